package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"flyright-service/internal/domain/repository"

	"gorm.io/gorm"
)

// Carriers GORM model for the eligible-carrier table
type Carriers struct {
	ID        uint           `gorm:"primaryKey"`
	Code      string         `gorm:"column:code;unique"`
	Name      string         `gorm:"column:name"`
	Eligible  bool           `gorm:"column:eligible"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Carriers) TableName() string {
	return "m_carriers"
}

// Codeshares GORM model for the carrier->partner table
type Codeshares struct {
	ID          uint           `gorm:"primaryKey"`
	CarrierCode string         `gorm:"column:carrier_code;index"`
	PartnerCode string         `gorm:"column:partner_code"`
	Rank        int            `gorm:"column:rank"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (Codeshares) TableName() string {
	return "m_codeshares"
}

// Airports GORM model for airport classification
type Airports struct {
	ID        uint           `gorm:"primaryKey"`
	Code      string         `gorm:"column:code;unique"`
	Name      string         `gorm:"column:name"`
	Covered   bool           `gorm:"column:covered"`
	Gateway   bool           `gorm:"column:gateway"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "m_airports"
}

// GormCarrierDirectory implements CarrierDirectory backed by PostgreSQL.
// Tables are loaded into memory on Load so classifier lookups never touch
// the database; call Reload to pick up table changes.
type GormCarrierDirectory struct {
	db *gorm.DB

	mu         sync.RWMutex
	eligible   map[string]bool
	codeshares map[string][]string
	covered    map[string]bool
	gateways   map[string]bool
}

// NewGormCarrierDirectory creates a new GORM-backed directory
func NewGormCarrierDirectory(db *gorm.DB) *GormCarrierDirectory {
	return &GormCarrierDirectory{
		db:         db,
		eligible:   make(map[string]bool),
		codeshares: make(map[string][]string),
		covered:    make(map[string]bool),
		gateways:   make(map[string]bool),
	}
}

var _ repository.CarrierDirectory = (*GormCarrierDirectory)(nil)

// Load reads all lookup tables into memory
func (d *GormCarrierDirectory) Load(ctx context.Context) error {
	var carriers []Carriers
	if result := d.db.WithContext(ctx).Find(&carriers); result.Error != nil {
		return result.Error
	}

	var codeshares []Codeshares
	if result := d.db.WithContext(ctx).Find(&codeshares); result.Error != nil {
		return result.Error
	}

	var airports []Airports
	if result := d.db.WithContext(ctx).Find(&airports); result.Error != nil {
		return result.Error
	}

	eligible := make(map[string]bool, len(carriers))
	for _, c := range carriers {
		if c.Eligible {
			eligible[c.Code] = true
		}
	}

	sort.SliceStable(codeshares, func(i, j int) bool {
		return codeshares[i].Rank < codeshares[j].Rank
	})
	partners := make(map[string][]string)
	for _, cs := range codeshares {
		partners[cs.CarrierCode] = append(partners[cs.CarrierCode], cs.PartnerCode)
	}

	covered := make(map[string]bool)
	gateways := make(map[string]bool)
	for _, a := range airports {
		if a.Covered {
			covered[a.Code] = true
		}
		if a.Gateway {
			gateways[a.Code] = true
		}
	}

	d.mu.Lock()
	d.eligible = eligible
	d.codeshares = partners
	d.covered = covered
	d.gateways = gateways
	d.mu.Unlock()

	return nil
}

// Reload refreshes the in-memory tables
func (d *GormCarrierDirectory) Reload(ctx context.Context) error {
	return d.Load(ctx)
}

// IsEligibleCarrier reports whether the carrier is on the approved list
func (d *GormCarrierDirectory) IsEligibleCarrier(code string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.eligible[code]
}

// CodesharePartners returns eligible partners for a carrier, best first
func (d *GormCarrierDirectory) CodesharePartners(code string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.codeshares[code]
}

// IsCoveredAirport reports whether the airport is in covered territory
func (d *GormCarrierDirectory) IsCoveredAirport(code string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.covered[code]
}

// IsGatewayAirport reports whether the airport is a designated gateway
func (d *GormCarrierDirectory) IsGatewayAirport(code string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.gateways[code]
}
