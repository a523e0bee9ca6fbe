package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/idrealestat/aqariai-crm/internal/events"
	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/repositories"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

// ------------------------------------------------------------------
// Service
// ------------------------------------------------------------------

type CustomerService interface {
	Create(ctx context.Context, in CreateCustomerInput) (*models.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*models.Customer, error)
	Search(ctx context.Context, query string) ([]*models.Customer, error)
	List(ctx context.Context) ([]*models.Customer, error)
	Update(ctx context.Context, id uuid.UUID, patch CustomerPatch) (*models.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateCustomerInput struct {
	Name     string
	Phone    string
	Category models.CustomerCategory
	Source   string
	City     string
	District string
	Budget   float64
	Notes    string
	Tags     []string
}

// CustomerPatch applies only its non-nil fields.
type CustomerPatch struct {
	Name     *string
	Category *models.CustomerCategory
	Source   *string
	City     *string
	District *string
	Budget   *float64
	Notes    *string
	Tags     *[]string
	Status   *models.CustomerStatus
}

type customerService struct {
	repo        repositories.CustomerRepository
	broadcaster *events.Broadcaster
}

func NewCustomerService(repo repositories.CustomerRepository, b *events.Broadcaster) CustomerService {
	return &customerService{repo: repo, broadcaster: b}
}

// ------------------------------------------------------------------
// Public API
// ------------------------------------------------------------------

func (s *customerService) Create(ctx context.Context, in CreateCustomerInput) (*models.Customer, error) {
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "Phone is required",
			Err:        utils.ErrPhoneRequired,
		}
	}

	// Phone is the identity key: lookup-before-create keeps one record
	// per number.
	existing, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    fmt.Sprintf("A customer with phone %s already exists", phone),
		}
	}

	c := &models.Customer{
		ID:       uuid.New(),
		Name:     in.Name,
		Phone:    phone,
		Category: in.Category,
		Source:   in.Source,
		City:     in.City,
		District: in.District,
		Budget:   in.Budget,
		Notes:    in.Notes,
		Tags:     in.Tags,
		Status:   models.CustomerStatusNew,
	}
	if c.Category == "" {
		c.Category = models.CategoryOther
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.broadcaster.Publish(events.CustomersUpdated)
	utils.Logger.Infof("Created customer %s (phone=%s)", c.ID, c.Phone)
	return c, nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFoundCustomer(id)
	}
	return c, nil
}

func (s *customerService) FindByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	return s.repo.FindByPhone(ctx, phone)
}

func (s *customerService) Search(ctx context.Context, query string) ([]*models.Customer, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.ListAll(ctx)
	}
	return s.repo.Search(ctx, query)
}

func (s *customerService) List(ctx context.Context) ([]*models.Customer, error) {
	return s.repo.ListAll(ctx)
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, patch CustomerPatch) (*models.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFoundCustomer(id)
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Category != nil {
		c.Category = *patch.Category
	}
	if patch.Source != nil {
		c.Source = *patch.Source
	}
	if patch.City != nil {
		c.City = *patch.City
	}
	if patch.District != nil {
		c.District = *patch.District
	}
	if patch.Budget != nil {
		c.Budget = *patch.Budget
	}
	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	if patch.Tags != nil {
		c.Tags = *patch.Tags
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.broadcaster.Publish(events.CustomersUpdated)
	return c, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFoundCustomer(id)
	}

	// Listings keep their weak customer_id reference; there is no
	// cascade on customer deletion.
	s.broadcaster.Publish(events.CustomersUpdated)
	utils.Logger.Infof("Deleted customer %s", id)
	return nil
}

func notFoundCustomer(id uuid.UUID) error {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    fmt.Sprintf("Customer %s not found", id),
		Err:        utils.ErrCustomerNotFound,
	}
}
