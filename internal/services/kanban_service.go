package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/repositories"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

// ------------------------------------------------------------------
// Service
// ------------------------------------------------------------------

// KanbanService holds the lead pipeline boards. Boards live in memory
// only (session semantics); the customer projection is a one-way,
// read-only view and never writes back to customer records.
type KanbanService interface {
	Board(boardID string) *models.Board
	AddLead(boardID, columnID string, lead models.Lead) (*models.Board, error)
	MoveLead(boardID string, move MoveRequest) (*models.Board, error)

	// BoardFromCustomers projects current customer statuses onto the
	// pipeline stages.
	BoardFromCustomers(ctx context.Context) (*models.Board, error)
}

type MoveRequest struct {
	LeadID     string
	FromColumn string
	FromIndex  int
	ToColumn   string
	ToIndex    int
}

type kanbanService struct {
	customers repositories.CustomerRepository

	mu     sync.Mutex
	boards map[string]*models.Board
}

func NewKanbanService(customers repositories.CustomerRepository) KanbanService {
	return &kanbanService{
		customers: customers,
		boards:    make(map[string]*models.Board),
	}
}

// pipelineStages defines the default stage buckets and the one-way
// mapping from customer status to column id.
var pipelineStages = []struct {
	ID     string
	Title  string
	Status models.CustomerStatus
}{
	{"new", "New", models.CustomerStatusNew},
	{"contacted", "Contacted", models.CustomerStatusContacted},
	{"negotiating", "Negotiating", models.CustomerStatusNegotiating},
	{"closed", "Closed", models.CustomerStatusClosed},
	{"lost", "Lost", models.CustomerStatusLost},
}

// ------------------------------------------------------------------
// Public API
// ------------------------------------------------------------------

func (s *kanbanService) Board(boardID string) *models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneBoard(s.board(boardID))
}

func (s *kanbanService) AddLead(boardID, columnID string, lead models.Lead) (*models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	board := s.board(boardID)
	col := findColumn(board, columnID)
	if col == nil {
		return nil, notFoundColumn(columnID)
	}
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	col.Leads = append(col.Leads, lead)
	return cloneBoard(board), nil
}

// MoveLead applies a drag-end atomically: remove from the source column
// at the source index, insert into the destination column at the
// destination index. Same column and index is a no-op.
func (s *kanbanService) MoveLead(boardID string, move MoveRequest) (*models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	board := s.board(boardID)

	src := findColumn(board, move.FromColumn)
	if src == nil {
		return nil, notFoundColumn(move.FromColumn)
	}
	dst := findColumn(board, move.ToColumn)
	if dst == nil {
		return nil, notFoundColumn(move.ToColumn)
	}

	if move.FromIndex < 0 || move.FromIndex >= len(src.Leads) {
		return nil, indexError(move.FromColumn, move.FromIndex)
	}
	lead := src.Leads[move.FromIndex]
	if move.LeadID != "" && lead.ID != move.LeadID {
		return nil, &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    fmt.Sprintf("Lead at %s[%d] is no longer %s", move.FromColumn, move.FromIndex, move.LeadID),
			Err:        utils.ErrLeadNotFound,
		}
	}

	if move.FromColumn == move.ToColumn && move.FromIndex == move.ToIndex {
		return cloneBoard(board), nil
	}

	src.Leads = append(src.Leads[:move.FromIndex], src.Leads[move.FromIndex+1:]...)

	if move.ToIndex < 0 || move.ToIndex > len(dst.Leads) {
		// restore the source column before reporting, the board must
		// not be left with the lead missing
		src.Leads = append(src.Leads[:move.FromIndex], append([]models.Lead{lead}, src.Leads[move.FromIndex:]...)...)
		return nil, indexError(move.ToColumn, move.ToIndex)
	}
	dst.Leads = append(dst.Leads[:move.ToIndex], append([]models.Lead{lead}, dst.Leads[move.ToIndex:]...)...)

	return cloneBoard(board), nil
}

func (s *kanbanService) BoardFromCustomers(ctx context.Context) (*models.Board, error) {
	customers, err := s.customers.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	board := defaultBoard("customers")
	for _, c := range customers {
		col := columnForStatus(board, c.Status)
		col.Leads = append(col.Leads, models.Lead{
			ID:    c.ID.String(),
			Name:  c.Name,
			Phone: c.Phone,
			Value: c.Budget,
		})
	}
	return board, nil
}

// ------------------------------------------------------------------
// internals
// ------------------------------------------------------------------

// board returns the live board, creating the default stage layout on
// first use. Callers must hold s.mu.
func (s *kanbanService) board(boardID string) *models.Board {
	if b, ok := s.boards[boardID]; ok {
		return b
	}
	b := defaultBoard(boardID)
	s.boards[boardID] = b
	return b
}

func defaultBoard(id string) *models.Board {
	board := &models.Board{ID: id}
	for _, stage := range pipelineStages {
		board.Columns = append(board.Columns, models.Column{ID: stage.ID, Title: stage.Title, Leads: []models.Lead{}})
	}
	return board
}

func findColumn(board *models.Board, columnID string) *models.Column {
	for i := range board.Columns {
		if board.Columns[i].ID == columnID {
			return &board.Columns[i]
		}
	}
	return nil
}

func columnForStatus(board *models.Board, status models.CustomerStatus) *models.Column {
	for _, stage := range pipelineStages {
		if stage.Status == status {
			return findColumn(board, stage.ID)
		}
	}
	// unknown statuses surface at the head of the pipeline
	return findColumn(board, "new")
}

func cloneBoard(board *models.Board) *models.Board {
	cp := &models.Board{ID: board.ID}
	for _, col := range board.Columns {
		leads := make([]models.Lead, len(col.Leads))
		copy(leads, col.Leads)
		cp.Columns = append(cp.Columns, models.Column{ID: col.ID, Title: col.Title, Leads: leads})
	}
	return cp
}

func notFoundColumn(id string) error {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    fmt.Sprintf("Column %q not found", id),
		Err:        utils.ErrColumnNotFound,
	}
}

func indexError(column string, idx int) error {
	return &utils.AppError{
		StatusCode: http.StatusBadRequest,
		Code:       utils.ErrCodeValidation,
		Message:    fmt.Sprintf("Index %d is out of range for column %q", idx, column),
		Err:        utils.ErrIndexOutOfRange,
	}
}
