package repository

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"drinks-marketplace-service/internal/models"
)

type SellerRepository interface {
	Create(seller *models.Seller) error
	GetByID(id uuid.UUID) (*models.Seller, error)
	GetByUserID(userID uuid.UUID) (*models.Seller, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	List(filters *models.SellerFilters, page, limit int) ([]models.Seller, *models.PaginationInfo, error)
	Search(query string, page, limit int) ([]models.Seller, *models.PaginationInfo, error)
	ListNearby(lat, lon float64, limit int) ([]models.NearbySeller, error)
	UpdateStatus(id uuid.UUID, status models.SellerStatus) error
}

type sellerRepository struct {
	db *gorm.DB
}

func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) Create(seller *models.Seller) error {
	seller.CreatedAt = time.Now()
	seller.UpdatedAt = time.Now()

	return r.db.Create(seller).Error
}

func (r *sellerRepository) GetByID(id uuid.UUID) (*models.Seller, error) {
	var seller models.Seller
	err := r.db.Where("id = ?", id).
		Preload("Drinks").
		First(&seller).Error

	if err != nil {
		return nil, err
	}

	return &seller, nil
}

func (r *sellerRepository) GetByUserID(userID uuid.UUID) (*models.Seller, error) {
	var seller models.Seller
	err := r.db.Where("user_id = ?", userID).
		First(&seller).Error

	if err != nil {
		return nil, err
	}

	return &seller, nil
}

func (r *sellerRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result := r.db.Model(&models.Seller{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *sellerRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Seller{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *sellerRepository) List(filters *models.SellerFilters, page, limit int) ([]models.Seller, *models.PaginationInfo, error) {
	query := r.db.Model(&models.Seller{})

	if filters != nil {
		if len(filters.Statuses) > 0 {
			query = query.Where("status IN ?", filters.Statuses)
		}
		if len(filters.Cities) > 0 {
			query = query.Where("city IN ?", filters.Cities)
		}
		if filters.IsActive != nil {
			query = query.Where("is_active = ?", *filters.IsActive)
		}
		if filters.Category != nil {
			// Sellers with at least one available drink in the category
			query = query.Where(
				"id IN (?)",
				r.db.Model(&models.Drink{}).
					Select("seller_id").
					Where("category = ? AND is_available = ? AND deleted_at IS NULL", *filters.Category, true),
			)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var sellers []models.Seller
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&sellers).Error

	if err != nil {
		return nil, nil, err
	}

	return sellers, models.NewPaginationInfo(page, limit, total), nil
}

func (r *sellerRepository) Search(query string, page, limit int) ([]models.Seller, *models.PaginationInfo, error) {
	pattern := "%" + query + "%"
	q := r.db.Model(&models.Seller{}).
		Where("is_active = ?", true).
		Where("business_name LIKE ? OR address LIKE ? OR city LIKE ?", pattern, pattern, pattern)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var sellers []models.Seller
	err := q.
		Order("business_name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&sellers).Error

	if err != nil {
		return nil, nil, err
	}

	return sellers, models.NewPaginationInfo(page, limit, total), nil
}

// ListNearby returns active sellers with coordinates ordered by
// haversine distance from the query point. Distance is computed in Go
// so the query stays portable across Postgres and the sqlite used in
// tests.
func (r *sellerRepository) ListNearby(lat, lon float64, limit int) ([]models.NearbySeller, error) {
	var sellers []models.Seller
	err := r.db.
		Where("is_active = ? AND status = ?", true, models.SellerStatusActive).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Find(&sellers).Error

	if err != nil {
		return nil, err
	}

	nearby := make([]models.NearbySeller, 0, len(sellers))
	for _, s := range sellers {
		nearby = append(nearby, models.NearbySeller{
			Seller:     s,
			DistanceKm: haversineKm(lat, lon, *s.Latitude, *s.Longitude),
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	if limit > 0 && len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby, nil
}

func (r *sellerRepository) UpdateStatus(id uuid.UUID, status models.SellerStatus) error {
	return r.Update(id, map[string]interface{}{"status": status})
}

const earthRadiusKm = 6371.0

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
