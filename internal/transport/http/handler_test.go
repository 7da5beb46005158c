package httptransport

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"loan-gateway/internal/capture"
	"loan-gateway/internal/conversation"
	"loan-gateway/internal/customer"
	"loan-gateway/internal/document"
	"loan-gateway/internal/offer"
	"loan-gateway/internal/platform/metrics"
	"loan-gateway/internal/sanction"
	"loan-gateway/internal/underwriting"
	"loan-gateway/internal/upload"
	"loan-gateway/internal/verification"
	"loan-gateway/pkg/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, document.Store) {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	directory := customer.NewInMemoryDirectory([]customer.Customer{
		{ID: "CUST-1", Name: "Ravi Kumar", City: "Mumbai", Phone: "9000000001"},
	})
	documents, err := document.NewFSStore(t.TempDir())
	require.NoError(t, err)

	turns := conversation.New(
		capture.New(directory, logger),
		verification.New(directory, logger),
		underwriting.New(offer.NewTable(), 100000, logger),
		sanction.New(sanction.NewPDFRenderer(), documents, logger),
		directory,
		nil,
		metrics.NewWith(prometheus.NewRegistry()),
		logger,
	)
	uploads := upload.New(documents, logger)
	h := NewHandler(turns, uploads, documents, logger)
	return NewRouter(h, logger), documents
}

func TestChatEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/chat", map[string]any{
		"message": "I need 80000 for 12 months for education",
		"context": map[string]any{},
	})
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatusOK(t, rr)
	result := testutil.UnmarshalResponse[conversation.TurnResult](t, rr)
	require.Equal(t, int64(80000), result.Context.LoanAmount)
	require.Contains(t, result.Message, "full name, city")
}

func TestChatEndpointTolerantContext(t *testing.T) {
	router, _ := newTestRouter(t)

	// Missing, null, and malformed contexts all normalize to an empty one.
	for _, body := range []string{
		`{"message":"hello"}`,
		`{"message":"hello","context":null}`,
		`{"message":"hello","context":{"loanAmount":"50,000"}}`,
	} {
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/api/chat", body)
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusOK(t, rr)
	}
}

func TestChatEndpointBadBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := testutil.NewRequestWithBody(t, http.MethodPost, "/api/chat", "{not json")
	rr := testutil.DoRequest(router, req)
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "invalid request body")
}

func TestUploadSlipEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("slip", "payslip.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake payslip bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-slip", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "status", "received")
	testutil.AssertJSONHasKey(t, rr, "fileId")
}

func TestUploadSlipEndpointMissingFile(t *testing.T) {
	router, _ := newTestRouter(t)

	req := testutil.NewRequestWithBody(t, http.MethodPost, "/api/upload-slip", "")
	rr := testutil.DoRequest(router, req)
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "No file uploaded")
}

func TestPDFEndpoint(t *testing.T) {
	router, documents := newTestRouter(t)

	require.NoError(t, documents.Put(t.Context(), "abc123.pdf", []byte("%PDF-1.4 test")))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/pdf/abc123"))
	testutil.AssertStatusOK(t, rr)
	require.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-1.4 test"), body)
}

func TestPDFEndpointNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/pdf/missing"))
	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "PDF not found")
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "status", "ok")
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatusOK(t, rr)
}

func TestChatEndToEndApproval(t *testing.T) {
	router, documents := newTestRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/chat", map[string]any{
		"message": "I need 80000 for 12 months for education",
		"context": map[string]any{},
	})
	first := testutil.UnmarshalResponse[conversation.TurnResult](t, testutil.DoRequest(router, req))

	req = testutil.NewJSONRequest(t, http.MethodPost, "/api/chat", map[string]any{
		"message": "Ayush Prajapati, Varanasi, 9876543210",
		"context": first.Context,
	})
	rr := testutil.DoRequest(router, req)
	testutil.AssertStatusOK(t, rr)
	second := testutil.UnmarshalResponse[conversation.TurnResult](t, rr)

	require.NotEmpty(t, second.SanctionLetterLink)

	// The sanction letter is immediately downloadable.
	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, second.SanctionLetterLink))
	testutil.AssertStatusOK(t, rr)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	_, err = documents.Get(t.Context(), second.Context.Sanction.ID+".pdf")
	require.NoError(t, err)
}
