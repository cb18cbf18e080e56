package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"sskcargo/core"
	"sskcargo/middleware"
	"sskcargo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLRRepo is an in-memory LRRepository for handler tests.
type fakeLRRepo struct {
	byOwner map[int64]map[string]*models.LorryReceipt
	saveErr error
}

func newFakeLRRepo() *fakeLRRepo {
	return &fakeLRRepo{byOwner: make(map[int64]map[string]*models.LorryReceipt)}
}

func (f *fakeLRRepo) bucket(ownerID int64) map[string]*models.LorryReceipt {
	if f.byOwner[ownerID] == nil {
		f.byOwner[ownerID] = make(map[string]*models.LorryReceipt)
	}
	return f.byOwner[ownerID]
}

func (f *fakeLRRepo) Save(lr *models.LorryReceipt) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := *lr
	// Like both real backends: upsert keeps the stored attachment and
	// status stamp when the incoming record carries none.
	if existing := f.bucket(lr.OwnerID)[lr.LRNo]; existing != nil {
		if cp.PODURL == nil {
			cp.PODURL = existing.PODURL
		}
		if cp.StatusUpdatedAt == nil {
			cp.StatusUpdatedAt = existing.StatusUpdatedAt
		}
		cp.CreatedAt = existing.CreatedAt
	}
	f.bucket(lr.OwnerID)[lr.LRNo] = &cp
	return nil
}

func (f *fakeLRRepo) List(ownerID int64) ([]*models.LorryReceipt, error) {
	var out []*models.LorryReceipt
	for _, lr := range f.bucket(ownerID) {
		out = append(out, lr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeLRRepo) GetByNo(ownerID int64, lrNo string) (*models.LorryReceipt, error) {
	return f.bucket(ownerID)[lrNo], nil
}

func (f *fakeLRRepo) ListNos(ownerID int64) ([]string, error) {
	var nos []string
	for no := range f.bucket(ownerID) {
		nos = append(nos, no)
	}
	return nos, nil
}

func (f *fakeLRRepo) Delete(ownerID int64, lrNo string) (string, error) {
	lr := f.bucket(ownerID)[lrNo]
	delete(f.bucket(ownerID), lrNo)
	if lr != nil && lr.PODURL != nil {
		return *lr.PODURL, nil
	}
	return "", nil
}

func (f *fakeLRRepo) UpdateStatus(ownerID int64, lrNo, status string, at time.Time) error {
	if lr := f.bucket(ownerID)[lrNo]; lr != nil {
		lr.Status = status
		lr.StatusUpdatedAt = &at
	}
	return nil
}

func (f *fakeLRRepo) UpdatePOD(ownerID int64, lrNo string, url *string) error {
	if lr := f.bucket(ownerID)[lrNo]; lr != nil {
		lr.PODURL = url
	}
	return nil
}

var testIdent = middleware.Identity{OwnerID: 7, Name: "Asha", Role: "operator"}

func authedRequest(method, target string, body []byte) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	return middleware.WithIdentity(r, testIdent)
}

func TestLRHandlerSave(t *testing.T) {
	repo := newFakeLRRepo()
	h := &LRHandler{Repo: repo, Prefix: "HR/"}

	body, _ := json.Marshal(map[string]interface{}{
		"truck_no": "MH12AB1234",
		"date":     "2024-03-10T00:00:00Z",
		"consignor": map[string]string{
			"name": "Acme Traders", "address": "12 Mill Road",
		},
		"billing_mode":     "Consignor",
		"items":            []map[string]interface{}{{"description": "Boxes", "pcs": 5, "weight": "2.5"}},
		"actual_weight_mt": 2,
		"rate":             1000,
		"charges":          map[string]interface{}{"hamali": "150"},
		// Client-sent derived values must be discarded.
		"weight":  999,
		"freight": 999,
	})

	w := httptest.NewRecorder()
	h.Save(w, authedRequest(http.MethodPost, "/lr", body))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got models.LorryReceipt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	assert.Equal(t, "HR/00001", got.LRNo, "first receipt gets the first auto number")
	assert.Equal(t, models.LRTypeOriginal, got.LRType)
	assert.Equal(t, core.StatusBooked, got.Status)
	assert.Equal(t, "Asha", got.CreatedBy)
	assert.Equal(t, "Acme Traders", got.BillingTo.Name, "billing party mirrors consignor")
	assert.InDelta(t, 2.5, got.Weight.Float64(), 1e-9)
	assert.InDelta(t, 2000.0, got.Freight.Float64(), 1e-9)

	saved, _ := repo.GetByNo(testIdent.OwnerID, "HR/00001")
	require.NotNil(t, saved)
	assert.Equal(t, testIdent.OwnerID, saved.OwnerID)
}

func TestLRHandlerSaveSequentialNumbers(t *testing.T) {
	repo := newFakeLRRepo()
	h := &LRHandler{Repo: repo, Prefix: "HR/"}

	for i := 0; i < 3; i++ {
		body, _ := json.Marshal(map[string]string{"truck_no": "MH12AB1234"})
		w := httptest.NewRecorder()
		h.Save(w, authedRequest(http.MethodPost, "/lr", body))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	nos, _ := repo.ListNos(testIdent.OwnerID)
	sort.Strings(nos)
	assert.Equal(t, []string{"HR/00001", "HR/00002", "HR/00003"}, nos)
}

func TestLRHandlerSaveKeepsExplicitNumber(t *testing.T) {
	repo := newFakeLRRepo()
	h := &LRHandler{Repo: repo, Prefix: "HR/"}

	body, _ := json.Marshal(map[string]string{"lr_no": "HR/00500"})
	w := httptest.NewRecorder()
	h.Save(w, authedRequest(http.MethodPost, "/lr", body))

	require.Equal(t, http.StatusCreated, w.Code)
	saved, _ := repo.GetByNo(testIdent.OwnerID, "HR/00500")
	assert.NotNil(t, saved)
}

func TestLRHandlerSaveIgnoresClientPODURL(t *testing.T) {
	repo := newFakeLRRepo()
	h := &LRHandler{Repo: repo, Prefix: "HR/"}

	t.Run("create cannot attach a POD", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"lr_no":   "HR/00001",
			"pod_url": "https://files.example/pod/forged.pdf",
		})
		w := httptest.NewRecorder()
		h.Save(w, authedRequest(http.MethodPost, "/lr", body))
		require.Equal(t, http.StatusCreated, w.Code)

		saved, _ := repo.GetByNo(testIdent.OwnerID, "HR/00001")
		require.NotNil(t, saved)
		assert.Nil(t, saved.PODURL)
	})

	t.Run("update keeps the uploaded POD", func(t *testing.T) {
		uploaded := "https://files.example/pod/real.pdf"
		require.NoError(t, repo.UpdatePOD(testIdent.OwnerID, "HR/00001", &uploaded))

		body, _ := json.Marshal(map[string]string{
			"lr_no":   "HR/00001",
			"pod_url": "https://files.example/pod/forged.pdf",
		})
		w := httptest.NewRecorder()
		h.Save(w, authedRequest(http.MethodPost, "/lr", body))
		require.Equal(t, http.StatusCreated, w.Code)

		saved, _ := repo.GetByNo(testIdent.OwnerID, "HR/00001")
		require.NotNil(t, saved.PODURL)
		assert.Equal(t, uploaded, *saved.PODURL)
	})
}

func TestLRHandlerSaveIgnoresClientStatusStamp(t *testing.T) {
	repo := newFakeLRRepo()
	h := &LRHandler{Repo: repo, Prefix: "HR/"}

	body, _ := json.Marshal(map[string]string{
		"lr_no":             "HR/00001",
		"status_updated_at": "2020-01-01T00:00:00Z",
	})
	w := httptest.NewRecorder()
	h.Save(w, authedRequest(http.MethodPost, "/lr", body))
	require.Equal(t, http.StatusCreated, w.Code)

	saved, _ := repo.GetByNo(testIdent.OwnerID, "HR/00001")
	require.NotNil(t, saved)
	assert.Nil(t, saved.StatusUpdatedAt, "the stamp is set only when status changes")

	// A real status change stamps it; a later save keeps that stamp.
	statusBody, _ := json.Marshal(map[string]string{"lr_no": "HR/00001", "status": core.StatusDelivered})
	w = httptest.NewRecorder()
	h.UpdateStatus(w, authedRequest(http.MethodPut, "/lr/status", statusBody))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.Save(w, authedRequest(http.MethodPost, "/lr", body))
	require.Equal(t, http.StatusCreated, w.Code)

	saved, _ = repo.GetByNo(testIdent.OwnerID, "HR/00001")
	assert.NotNil(t, saved.StatusUpdatedAt)
}

func TestLRHandlerSaveRejectsBadJSON(t *testing.T) {
	h := &LRHandler{Repo: newFakeLRRepo(), Prefix: "HR/"}
	w := httptest.NewRecorder()
	h.Save(w, authedRequest(http.MethodPost, "/lr", []byte(`{not json`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLRHandlerSaveRejectsUnknownStatus(t *testing.T) {
	h := &LRHandler{Repo: newFakeLRRepo(), Prefix: "HR/"}
	body, _ := json.Marshal(map[string]string{"status": "Misplaced"})
	w := httptest.NewRecorder()
	h.Save(w, authedRequest(http.MethodPost, "/lr", body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLRHandlerList(t *testing.T) {
	repo := newFakeLRRepo()
	h := &LRHandler{Repo: repo, Prefix: "HR/"}

	seed := []*models.LorryReceipt{
		{OwnerID: 7, LRNo: "HR/00001", TruckNo: "MH12AB1234", Date: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), Status: core.StatusDelivered},
		{OwnerID: 7, LRNo: "HR/00002", TruckNo: "GJ05XY9999", Date: time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC), Status: core.StatusInTransit},
	}
	for _, lr := range seed {
		require.NoError(t, repo.Save(lr))
	}

	t.Run("all", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.List(w, authedRequest(http.MethodGet, "/lr", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var got []*models.LorryReceipt
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "HR/00002", got[0].LRNo, "newest first")
	})

	t.Run("text filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.List(w, authedRequest(http.MethodGet, "/lr?q=gj05", nil))

		var got []*models.LorryReceipt
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "HR/00002", got[0].LRNo)
	})

	t.Run("single day range includes timestamped record", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.List(w, authedRequest(http.MethodGet, "/lr?from=2024-03-10&to=2024-03-10", nil))

		var got []*models.LorryReceipt
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "HR/00002", got[0].LRNo)
	})

	t.Run("bad date is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.List(w, authedRequest(http.MethodGet, "/lr?from=10-03-2024", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no match returns empty array not null", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.List(w, authedRequest(http.MethodGet, "/lr?q=zzz", nil))
		assert.Equal(t, "[]\n", w.Body.String())
	})
}

func TestLRHandlerListScopedToOwner(t *testing.T) {
	repo := newFakeLRRepo()
	h := &LRHandler{Repo: repo, Prefix: "HR/"}

	require.NoError(t, repo.Save(&models.LorryReceipt{OwnerID: 99, LRNo: "HR/00001"}))

	w := httptest.NewRecorder()
	h.List(w, authedRequest(http.MethodGet, "/lr", nil))

	var got []*models.LorryReceipt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Empty(t, got, "another owner's receipts are invisible")
}

func TestLRHandlerGetByNo(t *testing.T) {
	repo := newFakeLRRepo()
	h := &LRHandler{Repo: repo, Prefix: "HR/"}
	require.NoError(t, repo.Save(&models.LorryReceipt{OwnerID: 7, LRNo: "HR/00001"}))

	w := httptest.NewRecorder()
	h.GetByNo(w, authedRequest(http.MethodGet, "/lr/HR/00001", nil), "HR/00001")
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.GetByNo(w, authedRequest(http.MethodGet, "/lr/HR/09999", nil), "HR/09999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLRHandlerUpdateStatus(t *testing.T) {
	repo := newFakeLRRepo()
	h := &LRHandler{Repo: repo, Prefix: "HR/"}
	require.NoError(t, repo.Save(&models.LorryReceipt{OwnerID: 7, LRNo: "HR/00001", Status: core.StatusBooked}))

	body, _ := json.Marshal(map[string]string{"lr_no": "HR/00001", "status": core.StatusDelivered})
	w := httptest.NewRecorder()
	h.UpdateStatus(w, authedRequest(http.MethodPut, "/lr/status", body))
	require.Equal(t, http.StatusOK, w.Code)

	saved, _ := repo.GetByNo(7, "HR/00001")
	assert.Equal(t, core.StatusDelivered, saved.Status)
	assert.NotNil(t, saved.StatusUpdatedAt)

	t.Run("unknown status", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"lr_no": "HR/00001", "status": "Lost"})
		w := httptest.NewRecorder()
		h.UpdateStatus(w, authedRequest(http.MethodPut, "/lr/status", body))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown receipt", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"lr_no": "HR/09999", "status": core.StatusDelivered})
		w := httptest.NewRecorder()
		h.UpdateStatus(w, authedRequest(http.MethodPut, "/lr/status", body))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLRHandlerDelete(t *testing.T) {
	repo := newFakeLRRepo()
	h := &LRHandler{Repo: repo, Prefix: "HR/"}
	require.NoError(t, repo.Save(&models.LorryReceipt{OwnerID: 7, LRNo: "HR/00001"}))

	w := httptest.NewRecorder()
	h.Delete(w, authedRequest(http.MethodDelete, "/lr?no=HR%2F00001", nil))
	require.Equal(t, http.StatusOK, w.Code)

	saved, _ := repo.GetByNo(7, "HR/00001")
	assert.Nil(t, saved)

	t.Run("missing number", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Delete(w, authedRequest(http.MethodDelete, "/lr", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLRHandlerNextNo(t *testing.T) {
	repo := newFakeLRRepo()
	h := &LRHandler{Repo: repo, Prefix: "HR/"}
	require.NoError(t, repo.Save(&models.LorryReceipt{OwnerID: 7, LRNo: "HR/00041"}))

	w := httptest.NewRecorder()
	h.NextNo(w, authedRequest(http.MethodGet, "/lr/next-no", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "HR/00042", got["lr_no"])
}
