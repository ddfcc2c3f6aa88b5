package service

import (
	"time"

	"go-bakery-backend/internal/model"
	"go-bakery-backend/internal/repository"
)

// DailySummary is the dashboard snapshot: today's money in and out, lifetime
// money on hand and today's bread production.
type DailySummary struct {
	TodayIncome   float64 `json:"today_income"`
	TodayExpenses float64 `json:"today_expenses"`
	MoneyOnHand   float64 `json:"money_on_hand"`
	BreadQuantity int     `json:"bread_quantity"`
}

// LicenseStatus pairs a license with its computed expiry classification.
type LicenseStatus struct {
	License model.DriverLicense `json:"license"`
	Days    int                 `json:"days_until_expiry"`
	Status  model.ExpiryStatus  `json:"status"`
}

// DiskStatus is the vehicle license-disk equivalent.
type DiskStatus struct {
	Vehicle model.Vehicle      `json:"vehicle"`
	Days    int                `json:"days_until_expiry"`
	Status  model.ExpiryStatus `json:"status"`
}

// ReportService recomputes every answer from the repositories on each call.
// Nothing here is cached or materialized; for one bakery's records the folds
// are cheap and a stale-cache bug would cost more than the query.
type ReportService interface {
	GetDailySummary(now time.Time) (*DailySummary, error)
	GetCashBreakdown() (*repository.CashBreakdown, error)
	GetEmployeeCreditBalance(employeeID uint) (float64, error)
	GetSupplierBalance(supplierID uint) (float64, error)
	GetLicenseStatuses(now time.Time) ([]LicenseStatus, error)
	GetLicenseExpiryStats(now time.Time) (*model.ExpiryStats, error)
	GetDiskStatuses(now time.Time) ([]DiskStatus, error)
	GetDiskExpiryStats(now time.Time) (*model.ExpiryStats, error)
}

type reportService struct {
	financeRepo  repository.FinanceRepository
	orderRepo    repository.OrderRepository
	employeeRepo repository.EmployeeRepository
	vehicleRepo  repository.VehicleRepository
	supplierRepo repository.SupplierRepository
}

func NewReportService(
	fRepo repository.FinanceRepository,
	oRepo repository.OrderRepository,
	eRepo repository.EmployeeRepository,
	vRepo repository.VehicleRepository,
	sRepo repository.SupplierRepository,
) ReportService {
	return &reportService{
		financeRepo:  fRepo,
		orderRepo:    oRepo,
		employeeRepo: eRepo,
		vehicleRepo:  vRepo,
		supplierRepo: sRepo,
	}
}

func (s *reportService) GetDailySummary(now time.Time) (*DailySummary, error) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	todayIncome, err := s.financeRepo.IncomeBetween(start, end)
	if err != nil {
		return nil, err
	}
	todayExpenses, err := s.financeRepo.ExpensesBetween(start, end)
	if err != nil {
		return nil, err
	}
	totalIncome, err := s.financeRepo.TotalIncome()
	if err != nil {
		return nil, err
	}
	totalExpenses, err := s.financeRepo.TotalExpenses()
	if err != nil {
		return nil, err
	}
	breadQty, err := s.orderRepo.TodayBreadQuantity(now)
	if err != nil {
		return nil, err
	}

	return &DailySummary{
		TodayIncome:   todayIncome,
		TodayExpenses: todayExpenses,
		MoneyOnHand:   totalIncome - totalExpenses,
		BreadQuantity: breadQty,
	}, nil
}

func (s *reportService) GetCashBreakdown() (*repository.CashBreakdown, error) {
	return s.financeRepo.GetCashBreakdown()
}

func (s *reportService) GetEmployeeCreditBalance(employeeID uint) (float64, error) {
	return s.employeeRepo.CreditBalance(employeeID)
}

func (s *reportService) GetSupplierBalance(supplierID uint) (float64, error) {
	return s.supplierRepo.Balance(supplierID)
}

func (s *reportService) GetLicenseStatuses(now time.Time) ([]LicenseStatus, error) {
	licenses, err := s.employeeRepo.FindAllLicenses()
	if err != nil {
		return nil, err
	}
	statuses := make([]LicenseStatus, 0, len(licenses))
	for _, l := range licenses {
		days := l.DaysUntilExpiry(now)
		statuses = append(statuses, LicenseStatus{
			License: l,
			Days:    days,
			Status:  model.ClassifyExpiry(days),
		})
	}
	return statuses, nil
}

func (s *reportService) GetLicenseExpiryStats(now time.Time) (*model.ExpiryStats, error) {
	statuses, err := s.GetLicenseStatuses(now)
	if err != nil {
		return nil, err
	}
	var stats model.ExpiryStats
	for _, st := range statuses {
		stats.Add(st.Status)
	}
	return &stats, nil
}

func (s *reportService) GetDiskStatuses(now time.Time) ([]DiskStatus, error) {
	vehicles, err := s.vehicleRepo.FindWithDiskExpiry()
	if err != nil {
		return nil, err
	}
	statuses := make([]DiskStatus, 0, len(vehicles))
	for _, v := range vehicles {
		days, ok := v.DiskDaysUntilExpiry(now)
		if !ok {
			continue
		}
		statuses = append(statuses, DiskStatus{
			Vehicle: v,
			Days:    days,
			Status:  model.ClassifyExpiry(days),
		})
	}
	return statuses, nil
}

func (s *reportService) GetDiskExpiryStats(now time.Time) (*model.ExpiryStats, error) {
	statuses, err := s.GetDiskStatuses(now)
	if err != nil {
		return nil, err
	}
	var stats model.ExpiryStats
	for _, st := range statuses {
		stats.Add(st.Status)
	}
	return &stats, nil
}
