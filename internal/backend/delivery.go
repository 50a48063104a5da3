package backend

import (
	"context"
	"fmt"
	"net/http"

	"example.com/fleetdesk/internal/delivery"

	"github.com/pkg/errors"
)

// CreateCase opens a new inspection case from the step 1 intake data and
// returns the server-assigned case id. The id arrives under a handful of
// spellings depending on backend version.
func (c *Client) CreateCase(ctx context.Context, info delivery.GeneralInfo) (int64, error) {
	data, err := c.do(ctx, http.MethodPost, "/deliveries", info)
	if err != nil {
		return 0, err
	}
	raw, err := decodeObject(data)
	if err != nil {
		return 0, err
	}
	caseID := raw.num("informacionId", "InformacionId", "id", "ID", "caseId", "CaseId")
	if caseID <= 0 {
		return 0, errors.New("backend did not return a case id")
	}
	return caseID, nil
}

// UpdateStep submits one step's payload against an existing case
func (c *Client) UpdateStep(ctx context.Context, caseID int64, step delivery.Step, payload interface{}) error {
	if caseID <= 0 {
		return errors.New("case id is required")
	}
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/deliveries/%d/steps/%d", caseID, int(step)), payload)
	return err
}

// FinalizeCase closes an inspection case. It is always issued after the
// step 6 payload has been stored with UpdateStep.
func (c *Client) FinalizeCase(ctx context.Context, caseID int64) error {
	if caseID <= 0 {
		return errors.New("case id is required")
	}
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/deliveries/%d/finalize", caseID), nil)
	return err
}
