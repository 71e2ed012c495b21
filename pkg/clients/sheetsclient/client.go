package sheetsclient

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jakechorley/meeting-scheduler/internal/config"
	"github.com/jakechorley/meeting-scheduler/pkg/utils"
)

// Client wraps the Google Sheets API client
type Client struct {
	service *sheets.Service
}

// NewClient creates a Sheets client, running the OAuth flow if no usable token is stored for env
func NewClient(ctx context.Context, oauthCfg *config.OAuthClientConfig, env string, logger *zap.Logger) (*Client, error) {
	oauthConfig, err := utils.GetOAuthConfig(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth config: %w", err)
	}

	token, err := utils.GetTokenWithFlow(ctx, oauthConfig, env, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth token: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(oauthConfig.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{service: service}, nil
}

// GetValues reads values from a spreadsheet range
func (c *Client) GetValues(ctx context.Context, spreadsheetID, sheetRange string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, sheetRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get values: %w", err)
	}

	return resp.Values, nil
}

// UpdateValues overwrites a range starting at its top-left cell
func (c *Client) UpdateValues(ctx context.Context, spreadsheetID, sheetRange string, values [][]interface{}) error {
	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, sheetRange, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update values: %w", err)
	}

	return nil
}

// ClearValues empties a range, keeping formatting
func (c *Client) ClearValues(ctx context.Context, spreadsheetID, sheetRange string) error {
	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, sheetRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear values: %w", err)
	}

	return nil
}

// SheetExists reports whether the spreadsheet has a tab with the given title
func (c *Client) SheetExists(ctx context.Context, spreadsheetID, sheetTitle string) (bool, error) {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("failed to get spreadsheet metadata: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == sheetTitle {
			return true, nil
		}
	}
	return false, nil
}

// CreateSheet creates a new sheet/tab in the spreadsheet
func (c *Client) CreateSheet(ctx context.Context, spreadsheetID, sheetTitle string) (int64, error) {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: sheetTitle},
			},
		}},
	}

	resp, err := c.service.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to create sheet: %w", err)
	}

	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil {
		return 0, fmt.Errorf("unexpected response from create sheet")
	}

	return resp.Replies[0].AddSheet.Properties.SheetId, nil
}
