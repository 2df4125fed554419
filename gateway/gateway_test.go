package gateway

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"text-analysis-dashboard/backend"
	"text-analysis-dashboard/models"
)

// memoryBackend behaves like the backend service: ids are assigned on
// analyze and unknown ids fail delete with a 404 detail.
type memoryBackend struct {
	mu          sync.Mutex
	nextID      int64
	records     []models.AnalysisRecord
	deleteCalls int
	err         error
}

func (m *memoryBackend) Analyze(ctx context.Context, text string) (*models.AnalysisRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.nextID++
	rec := models.AnalysisRecord{
		ID:                m.nextID,
		Text:              text,
		EmotionLabel:      "neutral",
		EmotionConfidence: models.NewScore(0.5),
		GibberishLabel:    "clean",
		GibberishScore:    models.NewScore(0.9),
	}
	m.records = append(m.records, rec)
	return &rec, nil
}

func (m *memoryBackend) List(ctx context.Context) ([]models.AnalysisRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.AnalysisRecord{}, m.records...), nil
}

func (m *memoryBackend) Get(ctx context.Context, id string) (*models.AnalysisRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	n, _ := strconv.ParseInt(id, 10, 64)
	for _, r := range m.records {
		if r.ID == n {
			rec := r
			return &rec, nil
		}
	}
	return nil, &backend.Failure{Kind: backend.BackendUnavailable, Status: http.StatusNotFound, Message: "Entry not found"}
}

func (m *memoryBackend) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls++
	if m.err != nil {
		return m.err
	}
	n, _ := strconv.ParseInt(id, 10, 64)
	for i, r := range m.records {
		if r.ID == n {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return &backend.Failure{Kind: backend.BackendUnavailable, Status: http.StatusNotFound, Message: "Entry not found"}
}

func TestSubmitThenListContainsText(t *testing.T) {
	mem := &memoryBackend{}
	g := New(mem)
	ctx := context.Background()

	res := g.Submit(ctx, "I love this!")
	require.Equal(t, http.StatusOK, res.Status)
	body := res.Body.(SubmitBody)
	assert.Equal(t, "I love this!", body.Data.Text)

	list := g.List(ctx)
	require.Equal(t, http.StatusOK, list.Status)
	records := list.Body.([]models.AnalysisRecord)
	require.Len(t, records, 1)
	assert.Equal(t, "I love this!", records[0].Text)
}

func TestSubmitDoesNotRejectBlankText(t *testing.T) {
	mem := &memoryBackend{}
	res := New(mem).Submit(context.Background(), "   ")
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Len(t, mem.records, 1)
}

func TestSubmitFailure(t *testing.T) {
	mem := &memoryBackend{err: &backend.Failure{Kind: backend.MalformedBackendResponse}}
	res := New(mem).Submit(context.Background(), "x")
	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Equal(t, ErrorBody{Error: MsgAnalyzeFailed}, res.Body)
}

func TestListFailureIsSurfaced(t *testing.T) {
	mem := &memoryBackend{err: &backend.Failure{Kind: backend.BackendUnavailable, Status: 503}}
	res := New(mem).List(context.Background())
	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Equal(t, ErrorBody{Error: MsgFetchFailed}, res.Body)
}

func TestDeleteMissingIDIsClientError(t *testing.T) {
	mem := &memoryBackend{}
	res := New(mem).Delete(context.Background(), "")
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, ErrorBody{Error: MsgMissingID}, res.Body)
	assert.Zero(t, mem.deleteCalls)
}

func TestDeleteAbsentIDFailsAndLeavesListUnchanged(t *testing.T) {
	mem := &memoryBackend{}
	g := New(mem)
	ctx := context.Background()
	g.Submit(ctx, "one")
	g.Submit(ctx, "two")
	before := g.List(ctx).Body.([]models.AnalysisRecord)

	res := g.Delete(ctx, "99")
	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Equal(t, ErrorBody{Error: "Entry not found"}, res.Body)
	assert.Equal(t, before, g.List(ctx).Body.([]models.AnalysisRecord))
}

func TestDeletePresentIDRemovesExactlyOne(t *testing.T) {
	mem := &memoryBackend{}
	g := New(mem)
	ctx := context.Background()
	for _, s := range []string{"a", "b", "c"} {
		g.Submit(ctx, s)
	}

	res := g.Delete(ctx, "2")
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, MessageBody{Message: MsgDeleted}, res.Body)

	after := g.List(ctx).Body.([]models.AnalysisRecord)
	require.Len(t, after, 2)
	assert.Equal(t, int64(1), after[0].ID)
	assert.Equal(t, int64(3), after[1].ID)

	again := g.Delete(ctx, "2")
	assert.Equal(t, http.StatusInternalServerError, again.Status)
}

func TestDeleteWithoutDetailUsesGenericMessage(t *testing.T) {
	mem := &memoryBackend{err: &backend.Failure{Kind: backend.BackendUnavailable}}
	res := New(mem).Delete(context.Background(), "1")
	assert.Equal(t, ErrorBody{Error: MsgDeleteFailed}, res.Body)

	mem.err = errors.New("connection refused")
	res = New(mem).Delete(context.Background(), "1")
	assert.Equal(t, ErrorBody{Error: MsgDeleteFailed}, res.Body)
}

func TestRecordsPolicy(t *testing.T) {
	mem := &memoryBackend{err: &backend.Failure{Kind: backend.BackendUnavailable}}
	g := New(mem)

	records, err := g.Records(context.Background(), Degrade)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	_, err = g.Records(context.Background(), Surface)
	assert.True(t, backend.IsKind(err, backend.BackendUnavailable))

	mem.err = nil
	mem.records = []models.AnalysisRecord{{ID: 1}}
	records, err = g.Records(context.Background(), Surface)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestDeleteWhitespaceIDIsForwarded(t *testing.T) {
	mem := &memoryBackend{}
	res := New(mem).Delete(context.Background(), " ")
	assert.Equal(t, 1, mem.deleteCalls)
	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Equal(t, ErrorBody{Error: "Entry not found"}, res.Body)
}

func TestGet(t *testing.T) {
	mem := &memoryBackend{}
	g := New(mem)
	ctx := context.Background()
	g.Submit(ctx, "only one")

	res := g.Get(ctx, "1")
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "only one", res.Body.(*models.AnalysisRecord).Text)

	res = g.Get(ctx, "2")
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, ErrorBody{Error: MsgNotFound}, res.Body)

	res = g.Get(ctx, "")
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, ErrorBody{Error: MsgMissingID}, res.Body)

	mem.err = &backend.Failure{Kind: backend.BackendUnavailable, Status: http.StatusBadGateway}
	res = g.Get(ctx, "1")
	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Equal(t, ErrorBody{Error: MsgGetFailed}, res.Body)
}
