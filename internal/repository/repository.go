package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harshhadiyal7/Resource-Management-System-V2/internal/model"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) GetAccountByEmail(ctx context.Context, email string) (model.Account, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, full_name, email, password_hash, role, status, contact_number, gender, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)
	return scanAccount(row)
}

func (s *Store) GetAccountByID(ctx context.Context, id string) (model.Account, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, full_name, email, password_hash, role, status, contact_number, gender, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)
	return scanAccount(row)
}

// GetAccountStatus is the per-request liveness lookup: one indexed read,
// nothing else.
func (s *Store) GetAccountStatus(ctx context.Context, id string) (model.AccountStatus, error) {
	var status string
	err := s.pool.QueryRow(ctx, `SELECT status FROM users WHERE id = $1`, id).Scan(&status)
	if err != nil {
		return "", err
	}
	return model.AccountStatus(status), nil
}

func (s *Store) CreateAccount(ctx context.Context, account model.Account) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO users (id, full_name, email, password_hash, role, status, contact_number, gender, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, account.ID, account.FullName, account.Email, account.PasswordHash, string(account.Role), string(account.Status),
		account.ContactNumber, account.Gender, account.CreatedAt, account.UpdatedAt)
	return err
}

// ListAccounts returns every account, deleted ones included, so the admin
// view can offer restores.
func (s *Store) ListAccounts(ctx context.Context) ([]model.Account, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, full_name, email, password_hash, role, status, contact_number, gender, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (s *Store) SetAccountStatus(ctx context.Context, id string, status model.AccountStatus) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE users SET status = $1, updated_at = now() WHERE id = $2
	`, string(status), id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) GetAdministratorByEmail(ctx context.Context, email string) (model.Administrator, error) {
	var admin model.Administrator
	row := s.pool.QueryRow(ctx, `
		SELECT id, full_name, email, password_hash, created_at
		FROM administrators
		WHERE email = $1
	`, email)
	err := row.Scan(&admin.ID, &admin.FullName, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	return admin, err
}

func (s *Store) AdministratorExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM administrators WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// Canteen

func (s *Store) ListCanteenItems(ctx context.Context) ([]model.CanteenItem, error) {
	return s.queryCanteen(ctx, `
		SELECT id, item_name, price, quantity, status, created_at
		FROM canteen_items
		ORDER BY created_at DESC
	`)
}

// ListCanteenMenu is the student-facing ordering: available items first,
// then alphabetical.
func (s *Store) ListCanteenMenu(ctx context.Context) ([]model.CanteenItem, error) {
	return s.queryCanteen(ctx, `
		SELECT id, item_name, price, quantity, status, created_at
		FROM canteen_items
		ORDER BY status ASC, item_name ASC
	`)
}

func (s *Store) CreateCanteenItem(ctx context.Context, item model.CanteenItem) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO canteen_items (id, item_name, price, quantity, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, item.ID, item.ItemName, item.Price, item.Quantity, item.Status, item.CreatedAt)
	return err
}

func (s *Store) UpdateCanteenItem(ctx context.Context, item model.CanteenItem) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE canteen_items SET item_name = $1, price = $2, quantity = $3, status = $4 WHERE id = $5
	`, item.ItemName, item.Price, item.Quantity, item.Status, item.ID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteCanteenItem(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM canteen_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) queryCanteen(ctx context.Context, query string) ([]model.CanteenItem, error) {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.CanteenItem
	for rows.Next() {
		var item model.CanteenItem
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Price, &item.Quantity, &item.Status, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Stationery

func (s *Store) ListStationeryItems(ctx context.Context) ([]model.StationeryItem, error) {
	return s.queryStationery(ctx, `
		SELECT id, item_name, price, stock_level, category, created_at
		FROM stationery_items
		ORDER BY created_at DESC
	`)
}

func (s *Store) ListStationeryCatalog(ctx context.Context) ([]model.StationeryItem, error) {
	return s.queryStationery(ctx, `
		SELECT id, item_name, price, stock_level, category, created_at
		FROM stationery_items
		ORDER BY category ASC
	`)
}

func (s *Store) CreateStationeryItem(ctx context.Context, item model.StationeryItem) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO stationery_items (id, item_name, price, stock_level, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, item.ID, item.ItemName, item.Price, item.StockLevel, item.Category, item.CreatedAt)
	return err
}

func (s *Store) UpdateStationeryItem(ctx context.Context, item model.StationeryItem) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE stationery_items SET item_name = $1, price = $2, stock_level = $3, category = $4 WHERE id = $5
	`, item.ItemName, item.Price, item.StockLevel, item.Category, item.ID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteStationeryItem(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM stationery_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) queryStationery(ctx context.Context, query string) ([]model.StationeryItem, error) {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.StationeryItem
	for rows.Next() {
		var item model.StationeryItem
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Price, &item.StockLevel, &item.Category, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Hostel

func (s *Store) ListHostelItems(ctx context.Context) ([]model.HostelItem, error) {
	return s.queryHostel(ctx, `
		SELECT id, item_name, type, availability_status, created_at
		FROM hostel_items
		ORDER BY created_at DESC
	`)
}

func (s *Store) ListHostelAvailability(ctx context.Context) ([]model.HostelItem, error) {
	return s.queryHostel(ctx, `
		SELECT id, item_name, type, availability_status, created_at
		FROM hostel_items
		ORDER BY availability_status ASC
	`)
}

func (s *Store) CreateHostelItem(ctx context.Context, item model.HostelItem) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO hostel_items (id, item_name, type, availability_status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, item.ID, item.ItemName, item.Type, item.AvailabilityStatus, item.CreatedAt)
	return err
}

func (s *Store) UpdateHostelItem(ctx context.Context, item model.HostelItem) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE hostel_items SET item_name = $1, type = $2, availability_status = $3 WHERE id = $4
	`, item.ItemName, item.Type, item.AvailabilityStatus, item.ID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteHostelItem(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM hostel_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) queryHostel(ctx context.Context, query string) ([]model.HostelItem, error) {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.HostelItem
	for rows.Next() {
		var item model.HostelItem
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Type, &item.AvailabilityStatus, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (model.Account, error) {
	var account model.Account
	var role, status string
	err := row.Scan(
		&account.ID,
		&account.FullName,
		&account.Email,
		&account.PasswordHash,
		&role,
		&status,
		&account.ContactNumber,
		&account.Gender,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return model.Account{}, err
	}
	account.Role = model.Role(role)
	account.Status = model.AccountStatus(status)
	return account, nil
}
