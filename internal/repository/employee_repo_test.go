package repository

import (
	"testing"
	"time"

	"go-bakery-backend/internal/model"

	"github.com/stretchr/testify/require"
)

func seedEmployee(t *testing.T, repo EmployeeRepository, idNumber string) *model.Employee {
	t.Helper()
	e := &model.Employee{
		FirstName: "Sipho",
		LastName:  "Dlamini",
		IDNumber:  idNumber,
		IDType:    model.IDTypeID,
		Role:      model.RoleDriver,
	}
	require.NoError(t, repo.Create(e))
	return e
}

func TestEmployeeIDNumberIsUnique(t *testing.T) {
	repo := NewEmployeeRepo(testDB(t))
	seedEmployee(t, repo, "8001015009087")

	dup := &model.Employee{
		FirstName: "Thabo",
		LastName:  "Nkosi",
		IDNumber:  "8001015009087",
		IDType:    model.IDTypeID,
		Role:      model.RoleBaker,
	}
	err := repo.Create(dup)
	require.Error(t, err)
	require.True(t, IsConstraintErr(err))
}

func TestCreditBalanceFoldsFullHistory(t *testing.T) {
	repo := NewEmployeeRepo(testDB(t))
	e := seedEmployee(t, repo, "9002026000088")

	for _, tr := range []model.CreditTransaction{
		{EmployeeID: e.ID, EmployeeName: e.FullName(), TransactionType: model.CreditBorrow, Amount: 500},
		{EmployeeID: e.ID, EmployeeName: e.FullName(), TransactionType: model.CreditRepay, Amount: 200},
		{EmployeeID: e.ID, EmployeeName: e.FullName(), TransactionType: model.CreditBorrow, Amount: 100},
	} {
		tr := tr
		require.NoError(t, repo.CreateCredit(&tr))
	}

	balance, err := repo.CreditBalance(e.ID)
	require.NoError(t, err)
	require.Equal(t, 400.0, balance)

	transactions, err := repo.CreditsForEmployee(e.ID)
	require.NoError(t, err)
	require.Len(t, transactions, 3)
}

func TestCreditBalanceZeroWithoutHistory(t *testing.T) {
	repo := NewEmployeeRepo(testDB(t))
	e := seedEmployee(t, repo, "9103036000089")

	balance, err := repo.CreditBalance(e.ID)
	require.NoError(t, err)
	require.Equal(t, 0.0, balance)
}

func TestEmployeeDeleteCascadesAndUnassignsVehicle(t *testing.T) {
	db := testDB(t)
	repo := NewEmployeeRepo(db)
	e := seedEmployee(t, repo, "8504045000085")

	require.NoError(t, repo.CreateCredit(&model.CreditTransaction{
		EmployeeID: e.ID, EmployeeName: e.FullName(),
		TransactionType: model.CreditBorrow, Amount: 50,
	}))
	require.NoError(t, repo.CreateLicense(&model.DriverLicense{
		EmployeeID:    e.ID,
		LicenseNumber: "L-123",
		LicenseType:   "C1",
		ExpiryDate:    time.Now().AddDate(1, 0, 0),
	}))
	require.NoError(t, repo.CreateDocument(&model.EmployeeDocument{
		EmployeeID: e.ID, DocumentType: "Contract",
		FileName: "contract.pdf", FilePath: "/docs/contract.pdf",
		UploadedAt: time.Now(),
	}))

	vehicle := &model.Vehicle{
		Make: "Toyota", Model: "Hiace", Year: 2019,
		RegistrationNumber: "ND 123-456",
		AssignedDriverID:   &e.ID,
		AssignedDriverName: e.FullName(),
	}
	require.NoError(t, db.Create(vehicle).Error)

	affected, err := repo.Delete(e.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	_, err = repo.FindByID(e.ID)
	require.True(t, IsNotFound(err))

	for table, count := range map[string]int{
		"credit_transactions": 0,
		"driver_licenses":     0,
		"employee_documents":  0,
	} {
		var n int
		require.NoError(t, db.Raw("SELECT COUNT(*) FROM "+table).Scan(&n).Error)
		require.Equal(t, count, n, "%s should be empty after cascade", table)
	}

	var v model.Vehicle
	require.NoError(t, db.First(&v, vehicle.ID).Error)
	require.Nil(t, v.AssignedDriverID)
	require.Empty(t, v.AssignedDriverName)
}

func TestEmployeeDeleteMissingReportsZeroRows(t *testing.T) {
	repo := NewEmployeeRepo(testDB(t))
	affected, err := repo.Delete(999)
	require.NoError(t, err)
	require.EqualValues(t, 0, affected)
}

func TestLicensesOrderedByExpiry(t *testing.T) {
	repo := NewEmployeeRepo(testDB(t))
	e := seedEmployee(t, repo, "8706076000083")

	later := time.Now().AddDate(2, 0, 0)
	sooner := time.Now().AddDate(0, 1, 0)
	require.NoError(t, repo.CreateLicense(&model.DriverLicense{
		EmployeeID: e.ID, LicenseNumber: "L-2", LicenseType: "EB", ExpiryDate: later,
	}))
	require.NoError(t, repo.CreateLicense(&model.DriverLicense{
		EmployeeID: e.ID, LicenseNumber: "L-1", LicenseType: "C1", ExpiryDate: sooner,
	}))

	licenses, err := repo.FindAllLicenses()
	require.NoError(t, err)
	require.Len(t, licenses, 2)
	require.Equal(t, "L-1", licenses[0].LicenseNumber)
	require.NotNil(t, licenses[0].Employee)
	require.Equal(t, e.ID, licenses[0].Employee.ID)
}
