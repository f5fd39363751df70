package http

import (
	"net/http"

	"payout-analytics/internal/ingestors"
)

type ingestReportHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestReportHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestReportHandler{
		ingestionService: ingestionService,
	}
}

// IngestReportResponse summarizes a stored payout report upload.
type IngestReportResponse struct {
	RecordCount    int  `json:"recordCount"`
	CoercedMissing int  `json:"coercedMissing"`
	Replaced       bool `json:"replaced"`
}

// Handle processes POST /reports requests.
func (h *ingestReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestReport(r.Context(), callerID(r), contentType(r), r.Body)
	if err != nil {
		return err
	}

	return writeJSON(w, IngestReportResponse{
		RecordCount:    result.RecordCount,
		CoercedMissing: result.CoercedMissing,
		Replaced:       result.Replaced,
	})
}
