package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/repositories/memory"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

func newKanbanForTest() KanbanService {
	return NewKanbanService(memory.NewCustomerRepository())
}

func column(t *testing.T, board *models.Board, id string) models.Column {
	t.Helper()
	for _, col := range board.Columns {
		if col.ID == id {
			return col
		}
	}
	t.Fatalf("column %q not found on board %q", id, board.ID)
	return models.Column{}
}

func TestBoardStartsWithDefaultStages(t *testing.T) {
	svc := newKanbanForTest()

	board := svc.Board("deals")
	require.Equal(t, "deals", board.ID)
	require.Len(t, board.Columns, 5)

	var ids []string
	for _, col := range board.Columns {
		ids = append(ids, col.ID)
		require.Empty(t, col.Leads)
	}
	require.Equal(t, []string{"new", "contacted", "negotiating", "closed", "lost"}, ids)
}

func TestAddLeadAssignsID(t *testing.T) {
	svc := newKanbanForTest()

	board, err := svc.AddLead("deals", "new", models.Lead{Name: "Khalid", Value: 900_000})
	require.NoError(t, err)

	leads := column(t, board, "new").Leads
	require.Len(t, leads, 1)
	require.NotEmpty(t, leads[0].ID)
	require.Equal(t, "Khalid", leads[0].Name)

	_, err = svc.AddLead("deals", "archived", models.Lead{Name: "Nora"})
	require.ErrorIs(t, err, utils.ErrColumnNotFound)
}

func TestMoveLeadAcrossColumns(t *testing.T) {
	svc := newKanbanForTest()

	_, err := svc.AddLead("deals", "new", models.Lead{ID: "a", Name: "A"})
	require.NoError(t, err)
	_, err = svc.AddLead("deals", "new", models.Lead{ID: "b", Name: "B"})
	require.NoError(t, err)

	board, err := svc.MoveLead("deals", MoveRequest{
		LeadID:     "a",
		FromColumn: "new",
		FromIndex:  0,
		ToColumn:   "contacted",
		ToIndex:    0,
	})
	require.NoError(t, err)

	require.Len(t, column(t, board, "new").Leads, 1)
	require.Equal(t, "b", column(t, board, "new").Leads[0].ID)
	require.Len(t, column(t, board, "contacted").Leads, 1)
	require.Equal(t, "a", column(t, board, "contacted").Leads[0].ID)
}

func TestMoveLeadSamePositionIsNoOp(t *testing.T) {
	svc := newKanbanForTest()

	_, err := svc.AddLead("deals", "new", models.Lead{ID: "a", Name: "A"})
	require.NoError(t, err)

	board, err := svc.MoveLead("deals", MoveRequest{
		FromColumn: "new", FromIndex: 0,
		ToColumn: "new", ToIndex: 0,
	})
	require.NoError(t, err)
	require.Equal(t, "a", column(t, board, "new").Leads[0].ID)
}

func TestMoveLeadReordersWithinColumn(t *testing.T) {
	svc := newKanbanForTest()

	for _, id := range []string{"a", "b", "c"} {
		_, err := svc.AddLead("deals", "new", models.Lead{ID: id})
		require.NoError(t, err)
	}

	board, err := svc.MoveLead("deals", MoveRequest{
		FromColumn: "new", FromIndex: 0,
		ToColumn: "new", ToIndex: 2,
	})
	require.NoError(t, err)

	leads := column(t, board, "new").Leads
	require.Len(t, leads, 3)
	require.Equal(t, "b", leads[0].ID)
	require.Equal(t, "c", leads[1].ID)
	require.Equal(t, "a", leads[2].ID)
}

func TestMoveLeadBadDestinationIndexLeavesBoardIntact(t *testing.T) {
	svc := newKanbanForTest()

	for _, id := range []string{"a", "b"} {
		_, err := svc.AddLead("deals", "new", models.Lead{ID: id})
		require.NoError(t, err)
	}

	_, err := svc.MoveLead("deals", MoveRequest{
		FromColumn: "new", FromIndex: 0,
		ToColumn: "contacted", ToIndex: 5,
	})
	require.ErrorIs(t, err, utils.ErrIndexOutOfRange)

	// the failed move must not lose the lead or change its position
	board := svc.Board("deals")
	leads := column(t, board, "new").Leads
	require.Len(t, leads, 2)
	require.Equal(t, "a", leads[0].ID)
	require.Equal(t, "b", leads[1].ID)
	require.Empty(t, column(t, board, "contacted").Leads)
}

func TestMoveLeadStaleIDConflicts(t *testing.T) {
	svc := newKanbanForTest()

	_, err := svc.AddLead("deals", "new", models.Lead{ID: "a"})
	require.NoError(t, err)

	_, err = svc.MoveLead("deals", MoveRequest{
		LeadID:     "gone",
		FromColumn: "new", FromIndex: 0,
		ToColumn: "contacted", ToIndex: 0,
	})
	require.Error(t, err)

	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	require.Equal(t, http.StatusConflict, appErr.StatusCode)
}

func TestBoardReturnsIsolatedCopy(t *testing.T) {
	svc := newKanbanForTest()

	_, err := svc.AddLead("deals", "new", models.Lead{ID: "a", Name: "A"})
	require.NoError(t, err)

	board := svc.Board("deals")
	board.Columns[0].Leads[0].Name = "mutated"

	require.Equal(t, "A", column(t, svc.Board("deals"), "new").Leads[0].Name)
}

func TestBoardFromCustomersProjectsStatuses(t *testing.T) {
	repo := memory.NewCustomerRepository()
	svc := NewKanbanService(repo)
	ctx := context.Background()

	customers := []*models.Customer{
		{ID: mustUUID(t), Name: "Fahad", Phone: "+966500000001", Status: models.CustomerStatusContacted, Budget: 1_000_000},
		{ID: mustUUID(t), Name: "Sara", Phone: "+966500000002", Status: models.CustomerStatusNew},
		{ID: mustUUID(t), Name: "Omar", Phone: "+966500000003", Status: "unheard-of"},
	}
	for _, c := range customers {
		require.NoError(t, repo.Create(ctx, c))
	}

	board, err := svc.BoardFromCustomers(ctx)
	require.NoError(t, err)

	// unknown statuses land in "new" alongside genuinely new customers
	require.Len(t, column(t, board, "new").Leads, 2)

	contacted := column(t, board, "contacted").Leads
	require.Len(t, contacted, 1)
	require.Equal(t, "Fahad", contacted[0].Name)
	require.Equal(t, 1_000_000.0, contacted[0].Value)
}
