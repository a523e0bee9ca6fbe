package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/idrealestat/aqariai-crm/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type CustomerRepository interface {
	Create(ctx context.Context, c *models.Customer) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*models.Customer, error)
	Search(ctx context.Context, query string) ([]*models.Customer, error)
	ListAll(ctx context.Context) ([]*models.Customer, error)

	Update(ctx context.Context, c *models.Customer) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type customerRepo struct {
	db DB
}

func NewCustomerRepository(db DB) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, c *models.Customer) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO customers (
            id, name, phone, category, source, city, district, budget,
            notes, tags, status, custom_data,
            created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12, NOW(), NOW())
    `,
		c.ID,
		c.Name,
		c.Phone,
		c.Category,
		c.Source,
		c.City,
		c.District,
		c.Budget,
		c.Notes,
		c.Tags,
		c.Status,
		customDataArg(c),
	)
	return err
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	row := r.db.QueryRow(ctx, baseSelectCustomer()+" WHERE id=$1", id)
	return scanCustomer(row)
}

func (r *customerRepo) FindByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	row := r.db.QueryRow(ctx, baseSelectCustomer()+" WHERE phone=$1", phone)
	return scanCustomer(row)
}

func (r *customerRepo) Search(ctx context.Context, query string) ([]*models.Customer, error) {
	rows, err := r.db.Query(ctx,
		baseSelectCustomer()+` WHERE name ILIKE '%'||$1||'%' OR phone ILIKE '%'||$1||'%' ORDER BY created_at DESC`,
		query,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCustomers(rows)
}

func (r *customerRepo) ListAll(ctx context.Context) ([]*models.Customer, error) {
	rows, err := r.db.Query(ctx, baseSelectCustomer()+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCustomers(rows)
}

func (r *customerRepo) Update(ctx context.Context, c *models.Customer) error {
	_, err := r.db.Exec(ctx, `
        UPDATE customers SET
            name=$1, phone=$2, category=$3, source=$4, city=$5, district=$6,
            budget=$7, notes=$8, tags=$9, status=$10, custom_data=$11,
            updated_at=NOW()
        WHERE id=$12
    `,
		c.Name, c.Phone, c.Category, c.Source, c.City, c.District,
		c.Budget, c.Notes, c.Tags, c.Status, customDataArg(c),
		c.ID,
	)
	return err
}

func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func collectCustomers(rows pgx.Rows) ([]*models.Customer, error) {
	var out []*models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func baseSelectCustomer() string {
	return `
        SELECT
            id, name, phone, category, source, city, district, budget,
            notes, tags, status, custom_data,
            created_at, updated_at
        FROM customers
    `
}

func scanCustomer(row pgx.Row) (*models.Customer, error) {
	var c models.Customer
	var customData pgtype.JSONB
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Category,
		&c.Source,
		&c.City,
		&c.District,
		&c.Budget,
		&c.Notes,
		&c.Tags,
		&c.Status,
		&customData,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if customData.Status == pgtype.Present {
		c.CustomData = append([]byte(nil), customData.Bytes...)
	}
	return &c, nil
}

func customDataArg(c *models.Customer) *pgtype.JSONB {
	if len(c.CustomData) == 0 {
		return &pgtype.JSONB{Status: pgtype.Null}
	}
	return &pgtype.JSONB{Bytes: c.CustomData, Status: pgtype.Present}
}
