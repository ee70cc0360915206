// Package google reads whole spreadsheets through the Google Sheets API as
// a DocumentSource, and appends dashboard snapshots for the export worker.
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	goauth "golang.org/x/oauth2/google"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"findash/internal/importer"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	snapshotSheet string
}

// Ensure interface conformance
var _ importer.DocumentSource = (*Client)(nil)

// NewFromEnv creates a Sheets client from environment variables.
// Required: GOOGLE_SPREADSHEET_ID. Credentials come from
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS. Optional: SNAPSHOT_SHEET_NAME (default
// "Snapshots") for the export worker's append target.
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}
	snapshotSheet := strings.TrimSpace(os.Getenv("SNAPSHOT_SHEET_NAME"))
	if snapshotSheet == "" {
		snapshotSheet = "Snapshots"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		snapshotSheet: snapshotSheet,
	}, nil
}

// newSheetsService initializes a Sheets Service. Service Account
// credentials are preferred; an OAuth client plus a stored token (as
// written by cmd/oauth-init) is the fallback for personal spreadsheets.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return newOAuthSheetsService(ctx)
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// newOAuthSheetsService builds the service from an OAuth client config and
// a previously authorized token. Env: GOOGLE_OAUTH_CLIENT_JSON or
// GOOGLE_OAUTH_CLIENT_FILE, and GOOGLE_OAUTH_TOKEN_JSON or
// GOOGLE_OAUTH_TOKEN_FILE.
func newOAuthSheetsService(ctx context.Context) (*gsheet.Service, error) {
	clientJSON, err := readEnvOrFile("GOOGLE_OAUTH_CLIENT_JSON", "GOOGLE_OAUTH_CLIENT_FILE")
	if err != nil {
		return nil, err
	}
	if clientJSON == nil {
		return nil, errors.New("missing credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, GOOGLE_APPLICATION_CREDENTIALS, or an OAuth client and token)")
	}
	tokenJSON, err := readEnvOrFile("GOOGLE_OAUTH_TOKEN_JSON", "GOOGLE_OAUTH_TOKEN_FILE")
	if err != nil {
		return nil, err
	}
	if tokenJSON == nil {
		return nil, errors.New("missing OAuth token (set GOOGLE_OAUTH_TOKEN_JSON or GOOGLE_OAUTH_TOKEN_FILE, or run oauth-init)")
	}

	cfg, err := goauth.ConfigFromJSON(clientJSON, gsheet.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("oauth client config: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(tokenJSON, &tok); err != nil {
		return nil, fmt.Errorf("decode oauth token: %w", err)
	}

	service, err := gsheet.NewService(ctx, goption.WithHTTPClient(cfg.Client(ctx, &tok)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// readEnvOrFile returns inline JSON from jsonEnv, the contents of the file
// named by fileEnv, or nil when neither is set.
func readEnvOrFile(jsonEnv, fileEnv string) ([]byte, error) {
	if raw := strings.TrimSpace(os.Getenv(jsonEnv)); raw != "" {
		return []byte(raw), nil
	}
	if path := strings.TrimSpace(os.Getenv(fileEnv)); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fileEnv, err)
		}
		return b, nil
	}
	return nil, nil
}

// Sheets reads every sheet of the spreadsheet and converts each into a raw
// row table. The first row of a sheet is taken as its header row. The
// snapshot sheet is skipped so worker output never feeds back into imports.
func (c *Client) Sheets(ctx context.Context) ([]importer.Sheet, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}

	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get spreadsheet %s: %w", c.spreadsheetID, err)
	}

	out := make([]importer.Sheet, 0, len(meta.Sheets))
	for _, s := range meta.Sheets {
		title := s.Properties.Title
		if title == c.snapshotSheet {
			continue
		}
		resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, title).
			ValueRenderOption("UNFORMATTED_VALUE").Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", title, err)
		}
		out = append(out, importer.Sheet{Name: title, Rows: valuesToRows(resp.Values)})
		slog.InfoContext(ctx, "Read sheet",
			"sheet", title,
			"rows", len(resp.Values))
	}
	return out, nil
}

// AppendSnapshot appends one row per project to the snapshot sheet.
func (c *Client) AppendSnapshot(ctx context.Context, rows [][]any) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}
	values := make([][]interface{}, len(rows))
	for i, r := range rows {
		values[i] = r
	}
	rng := fmt.Sprintf("%s!A:E", c.snapshotSheet)
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, &gsheet.ValueRange{
		Values: values,
	}).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append snapshot rows: %w", err)
	}
	slog.InfoContext(ctx, "Appended snapshot rows",
		"sheet", c.snapshotSheet,
		"rows", len(rows),
		"at", time.Now().Format(time.RFC3339))
	return nil
}
