package database

import (
	"fmt"

	"gorm.io/gorm"
)

// SchemaVersion is the latest schema version. The current version of a file
// lives in SQLite's user_version pragma; a fresh file reads 0 and gets the
// full schema in one step, an older file gets each migration block in order.
const SchemaVersion = 7

var schemaTables = []string{
	"stock_items",
	"stock_movements",
	"employees",
	"credit_transactions",
	"employee_documents",
	"driver_licenses",
	"vehicles",
	"km_records",
	"service_records",
	"orders",
	"order_items",
	"income",
	"expenses",
	"suppliers",
	"supplier_invoices",
	"supplier_payments",
	"users",
}

// IsSchemaTable reports whether name is a table this schema owns. Used to
// validate table names coming in from export callers.
func IsSchemaTable(name string) bool {
	for _, t := range schemaTables {
		if t == name {
			return true
		}
	}
	return false
}

// Tables returns the schema table names in creation order.
func Tables() []string {
	out := make([]string, len(schemaTables))
	copy(out, schemaTables)
	return out
}

// Migrate brings the database file to SchemaVersion. The whole bring-up for
// one open runs in a single transaction: if any step fails nothing is
// applied and the error is fatal to the open. Downgrades are refused.
func Migrate(db *gorm.DB) error {
	current, err := schemaVersion(db)
	if err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}
	if current > SchemaVersion {
		return fmt.Errorf("schema migration failed: database is at version %d, newer than supported version %d", current, SchemaVersion)
	}
	if current == SchemaVersion {
		return nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if current == 0 {
			if err := createAll(tx); err != nil {
				return err
			}
		} else {
			for v := current + 1; v <= SchemaVersion; v++ {
				step, ok := migrations[v]
				if !ok {
					return fmt.Errorf("no migration registered for version %d", v)
				}
				if err := step(tx); err != nil {
					return fmt.Errorf("migrating to version %d: %w", v, err)
				}
			}
		}
		return setSchemaVersion(tx, SchemaVersion)
	})
	if err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}
	return nil
}

func schemaVersion(db *gorm.DB) (int, error) {
	var v int
	if err := db.Raw("PRAGMA user_version").Scan(&v).Error; err != nil {
		return 0, err
	}
	return v, nil
}

func setSchemaVersion(tx *gorm.DB, v int) error {
	return tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", v)).Error
}

// hasColumn guards ALTER TABLE ADD COLUMN steps so re-running a block at the
// same version stays a no-op.
func hasColumn(tx *gorm.DB, table, column string) (bool, error) {
	var n int
	err := tx.Raw("SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?", table, column).Scan(&n).Error
	return n > 0, err
}

func addColumn(tx *gorm.DB, table, definition string, column string) error {
	ok, err := hasColumn(tx, table, column)
	if err != nil || ok {
		return err
	}
	return tx.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", table, definition)).Error
}

func execAll(tx *gorm.DB, stmts []string) error {
	for _, stmt := range stmts {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// migrations holds the incremental blocks keyed by target version. Version 1
// has no block: a version-0 file is empty and goes through createAll.
var migrations = map[int]func(tx *gorm.DB) error{
	2: migrateV2,
	3: migrateV3,
	4: migrateV4,
	5: migrateV5,
	6: migrateV6,
	7: migrateV7,
}

// createAll builds the full schema at the latest version in one step.
func createAll(tx *gorm.DB) error {
	stmts := []string{
		ddlStockItems, ddlStockMovements,
		ddlEmployees, ddlCreditTransactions, ddlEmployeeDocuments, ddlDriverLicenses,
		ddlSuppliers, ddlSupplierInvoices, ddlSupplierPayments,
		ddlVehiclesFull, ddlKmRecords, ddlServiceRecords,
		ddlOrdersFull, ddlOrderItems,
		ddlIncomeV7, ddlExpensesV7,
		ddlUsers,
	}
	stmts = append(stmts, ddlIndexes...)
	return execAll(tx, stmts)
}

// Version 2: employee documents and driver licenses.
func migrateV2(tx *gorm.DB) error {
	return execAll(tx, []string{
		ddlEmployeeDocuments,
		ddlDriverLicenses,
		`CREATE INDEX IF NOT EXISTS idx_driver_licenses_expiry ON driver_licenses(expiry_date)`,
	})
}

// Version 3: supplier accounts.
func migrateV3(tx *gorm.DB) error {
	return execAll(tx, []string{ddlSuppliers, ddlSupplierInvoices, ddlSupplierPayments})
}

// Version 4: vehicle fleet, plus the order->vehicle cross-link.
func migrateV4(tx *gorm.DB) error {
	if err := tx.Exec(ddlVehiclesBase).Error; err != nil {
		return err
	}
	if err := addColumn(tx, "orders", "vehicle_id INTEGER REFERENCES vehicles(id) ON DELETE SET NULL", "vehicle_id"); err != nil {
		return err
	}
	return addColumn(tx, "orders", "vehicle_info TEXT", "vehicle_info")
}

// Version 5: license disk fields on vehicles.
func migrateV5(tx *gorm.DB) error {
	for _, col := range []struct{ def, name string }{
		{"license_disk_expiry DATETIME", "license_disk_expiry"},
		{"last_renewal_date DATETIME", "last_renewal_date"},
		{"disk_number TEXT", "disk_number"},
	} {
		if err := addColumn(tx, "vehicles", col.def, col.name); err != nil {
			return err
		}
	}
	return nil
}

// Version 6: km tracking fields plus the km/service history tables.
func migrateV6(tx *gorm.DB) error {
	for _, col := range []struct{ def, name string }{
		{"current_km INTEGER NOT NULL DEFAULT 0", "current_km"},
		{"last_service_km INTEGER NOT NULL DEFAULT 0", "last_service_km"},
		{"service_interval_km INTEGER NOT NULL DEFAULT 10000", "service_interval_km"},
		{"next_service_km INTEGER NOT NULL DEFAULT 10000", "next_service_km"},
	} {
		if err := addColumn(tx, "vehicles", col.def, col.name); err != nil {
			return err
		}
	}
	return execAll(tx, []string{
		ddlKmRecords,
		ddlServiceRecords,
		`CREATE INDEX IF NOT EXISTS idx_km_records_vehicle ON km_records(vehicle_id)`,
		`CREATE INDEX IF NOT EXISTS idx_km_records_date ON km_records(recorded_date)`,
		`CREATE INDEX IF NOT EXISTS idx_service_records_vehicle ON service_records(vehicle_id)`,
	})
}

// Version 7: the income/expenses pair is dropped and recreated with the coin
// denomination breakdown. The original app accepted losing the old rows here;
// backups are the safety net.
func migrateV7(tx *gorm.DB) error {
	return execAll(tx, []string{
		`DROP TABLE IF EXISTS income`,
		`DROP TABLE IF EXISTS expenses`,
		ddlIncomeV7,
		ddlExpensesV7,
	})
}

const ddlStockItems = `CREATE TABLE IF NOT EXISTS stock_items(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	unit TEXT NOT NULL,
	quantity_on_hand REAL NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
)`

const ddlStockMovements = `CREATE TABLE IF NOT EXISTS stock_movements(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	stock_item_id INTEGER NOT NULL REFERENCES stock_items(id) ON DELETE CASCADE,
	stock_item_name TEXT NOT NULL,
	movement_type TEXT NOT NULL,
	quantity REAL NOT NULL,
	employee_name TEXT,
	supplier_name TEXT,
	notes TEXT,
	created_at DATETIME NOT NULL
)`

const ddlEmployees = `CREATE TABLE IF NOT EXISTS employees(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	id_number TEXT NOT NULL UNIQUE,
	id_type TEXT NOT NULL,
	birth_date TEXT,
	role TEXT NOT NULL,
	photo_path TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
)`

const ddlCreditTransactions = `CREATE TABLE IF NOT EXISTS credit_transactions(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	employee_id INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
	employee_name TEXT NOT NULL,
	transaction_type TEXT NOT NULL,
	amount REAL NOT NULL,
	reason TEXT,
	created_at DATETIME NOT NULL
)`

const ddlEmployeeDocuments = `CREATE TABLE IF NOT EXISTS employee_documents(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	employee_id INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
	document_type TEXT NOT NULL,
	file_name TEXT NOT NULL,
	file_path TEXT NOT NULL,
	uploaded_at DATETIME NOT NULL
)`

const ddlDriverLicenses = `CREATE TABLE IF NOT EXISTS driver_licenses(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	employee_id INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
	license_number TEXT NOT NULL,
	license_type TEXT NOT NULL,
	license_types TEXT,
	issue_date DATETIME,
	expiry_date DATETIME,
	restrictions TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
)`

const ddlSuppliers = `CREATE TABLE IF NOT EXISTS suppliers(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	contact_person TEXT NOT NULL,
	phone_number TEXT NOT NULL,
	email TEXT,
	address TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
)`

const ddlSupplierInvoices = `CREATE TABLE IF NOT EXISTS supplier_invoices(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	supplier_id INTEGER NOT NULL REFERENCES suppliers(id) ON DELETE CASCADE,
	supplier_name TEXT NOT NULL,
	amount REAL NOT NULL,
	invoice_date DATETIME,
	notes TEXT,
	created_at DATETIME NOT NULL
)`

const ddlSupplierPayments = `CREATE TABLE IF NOT EXISTS supplier_payments(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	supplier_id INTEGER NOT NULL REFERENCES suppliers(id) ON DELETE CASCADE,
	supplier_name TEXT NOT NULL,
	amount REAL NOT NULL,
	payment_date DATETIME,
	notes TEXT,
	created_at DATETIME NOT NULL
)`

// ddlVehiclesBase is the version-4 shape; versions 5 and 6 extend it.
const ddlVehiclesBase = `CREATE TABLE IF NOT EXISTS vehicles(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	make TEXT NOT NULL,
	model TEXT NOT NULL,
	year INTEGER NOT NULL,
	registration_number TEXT NOT NULL UNIQUE,
	assigned_driver_id INTEGER REFERENCES employees(id) ON DELETE SET NULL,
	assigned_driver_name TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
)`

const ddlVehiclesFull = `CREATE TABLE IF NOT EXISTS vehicles(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	make TEXT NOT NULL,
	model TEXT NOT NULL,
	year INTEGER NOT NULL,
	registration_number TEXT NOT NULL UNIQUE,
	assigned_driver_id INTEGER REFERENCES employees(id) ON DELETE SET NULL,
	assigned_driver_name TEXT,
	license_disk_expiry DATETIME,
	last_renewal_date DATETIME,
	disk_number TEXT,
	current_km INTEGER NOT NULL DEFAULT 0,
	last_service_km INTEGER NOT NULL DEFAULT 0,
	service_interval_km INTEGER NOT NULL DEFAULT 10000,
	next_service_km INTEGER NOT NULL DEFAULT 10000,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
)`

const ddlKmRecords = `CREATE TABLE IF NOT EXISTS km_records(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	vehicle_id INTEGER NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
	km_reading INTEGER NOT NULL,
	recorded_date DATETIME NOT NULL,
	notes TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
)`

const ddlServiceRecords = `CREATE TABLE IF NOT EXISTS service_records(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	vehicle_id INTEGER NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
	service_km INTEGER NOT NULL,
	service_date DATETIME NOT NULL,
	cost REAL NOT NULL DEFAULT 0,
	notes TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
)`

const ddlOrdersFull = `CREATE TABLE IF NOT EXISTS orders(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	driver_id INTEGER REFERENCES employees(id) ON DELETE SET NULL,
	driver_name TEXT,
	vehicle_id INTEGER REFERENCES vehicles(id) ON DELETE SET NULL,
	vehicle_info TEXT,
	total_quantity INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL
)`

const ddlOrderItems = `CREATE TABLE IF NOT EXISTS order_items(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	item_type TEXT NOT NULL,
	trollies_or_qty INTEGER NOT NULL,
	quantity INTEGER NOT NULL
)`

const ddlIncomeV7 = `CREATE TABLE IF NOT EXISTS income(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	description TEXT,
	notes REAL NOT NULL,
	coins REAL NOT NULL,
	total REAL NOT NULL,
	amount_r5 REAL NOT NULL DEFAULT 0,
	amount_r2 REAL NOT NULL DEFAULT 0,
	amount_r1 REAL NOT NULL DEFAULT 0,
	amount_50c REAL NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL
)`

const ddlExpensesV7 = `CREATE TABLE IF NOT EXISTS expenses(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	description TEXT NOT NULL,
	notes REAL NOT NULL,
	coins REAL NOT NULL,
	amount_r5 REAL NOT NULL DEFAULT 0,
	amount_r2 REAL NOT NULL DEFAULT 0,
	amount_r1 REAL NOT NULL DEFAULT 0,
	amount_50c REAL NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL
)`

const ddlUsers = `CREATE TABLE IF NOT EXISTS users(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	full_name TEXT,
	role TEXT NOT NULL DEFAULT 'staff',
	is_active INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
)`

var ddlIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_stock_movements_item ON stock_movements(stock_item_id)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_movements_created ON stock_movements(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_credit_transactions_employee ON credit_transactions(employee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_employee_documents_employee ON employee_documents(employee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_driver_licenses_employee ON driver_licenses(employee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_driver_licenses_expiry ON driver_licenses(expiry_date)`,
	`CREATE INDEX IF NOT EXISTS idx_supplier_invoices_supplier ON supplier_invoices(supplier_id)`,
	`CREATE INDEX IF NOT EXISTS idx_supplier_payments_supplier ON supplier_payments(supplier_id)`,
	`CREATE INDEX IF NOT EXISTS idx_km_records_vehicle ON km_records(vehicle_id)`,
	`CREATE INDEX IF NOT EXISTS idx_km_records_date ON km_records(recorded_date)`,
	`CREATE INDEX IF NOT EXISTS idx_service_records_vehicle ON service_records(vehicle_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
}
