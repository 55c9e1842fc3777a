package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/DrGermanius/LaundryPOS/internal/model"
)

var ErrTooManyRequests = errors.New("too many requests")

// ReportClient fetches the closing report from a running server, for terminals that
// have no direct access to the store.
type ReportClient struct {
	client *resty.Client
}

func NewReportClient(serverURL, token string) *ReportClient {
	c := resty.New().
		SetBaseURL(serverURL).
		SetAuthToken(token).
		SetTimeout(30 * time.Second)
	return &ReportClient{client: c}
}

func (c *ReportClient) ClosingReport(date time.Time) (model.ClosingReport, error) {
	resp, err := c.client.R().
		SetQueryParam("date", date.Format("2006-01-02")).
		Get("/api/closing")
	if err != nil {
		return model.ClosingReport{}, err
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		var report model.ClosingReport
		err = json.Unmarshal(resp.Body(), &report)
		return report, err
	case http.StatusTooManyRequests:
		return model.ClosingReport{}, ErrTooManyRequests
	case http.StatusUnauthorized:
		return model.ClosingReport{}, ErrInvalidToken
	default:
		return model.ClosingReport{}, fmt.Errorf("closing report request status: %d", resp.StatusCode())
	}
}
