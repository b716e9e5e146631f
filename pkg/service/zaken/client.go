package zaken

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/utils/safe"
)

// Config holds the connection settings for the ZGW APIs
type Config struct {
	// BaseURL is the root of the Zaken API, e.g. https://zaken.example.nl/api/v1
	BaseURL string
	// DocumentsBaseURL is the root of the Documenten API, required only for
	// report uploads
	DocumentsBaseURL string
	ClientID         string
	Secret           string

	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

type client struct {
	cfg  Config
	http *http.Client
}

// New builds a Zaken API client authenticating each request with a fresh
// HS256 JWT derived from the client ID and secret.
func New(cfg Config) (Service, error) {
	if cfg.BaseURL == "" {
		return nil, goerr.New("zaken base URL is required")
	}
	if cfg.ClientID == "" || cfg.Secret == "" {
		return nil, goerr.New("zaken client credentials are required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &client{
		cfg:  cfg,
		http: httpClient,
	}, nil
}

func (c *client) bearerToken() (string, error) {
	tok, err := jwt.NewBuilder().
		Issuer(c.cfg.ClientID).
		IssuedAt(time.Now()).
		Claim("client_id", c.cfg.ClientID).
		Build()
	if err != nil {
		return "", goerr.Wrap(err, "failed to build token")
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, []byte(c.cfg.Secret)))
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign token")
	}

	return string(signed), nil
}

// do performs an authenticated JSON request. Non-2xx responses are returned
// as *ClientError so callers can persist the structured detail.
func (c *client) do(ctx context.Context, method, reqURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body", goerr.V("url", reqURL))
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("url", reqURL))
	}

	token, err := c.bearerToken()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Crs", "EPSG:4326")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Content-Crs", "EPSG:4326")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return goerr.Wrap(err, "request failed", goerr.V("method", method), goerr.V("url", reqURL))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseClientError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return goerr.Wrap(err, "failed to decode response", goerr.V("url", reqURL))
		}
	}

	return nil
}

func parseClientError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return goerr.Wrap(err, "failed to read error response", goerr.V("status", resp.StatusCode))
	}

	clientErr := &ClientError{Status: resp.StatusCode}
	if err := json.Unmarshal(raw, clientErr); err != nil {
		clientErr.Title = http.StatusText(resp.StatusCode)
		clientErr.Detail = strings.TrimSpace(string(raw))
	}
	clientErr.Status = resp.StatusCode

	return clientErr
}

func (c *client) FetchCase(ctx context.Context, caseURL string) (*Case, error) {
	var zaak Case
	if err := c.do(ctx, http.MethodGet, caseURL, nil, &zaak); err != nil {
		return nil, err
	}
	return &zaak, nil
}

type caseResult struct {
	URL        string `json:"url"`
	ResultType string `json:"resultaattype"`
}

type resultType struct {
	Description string `json:"omschrijving"`
}

func (c *client) FetchCaseOutcome(ctx context.Context, caseURL string) (string, error) {
	zaak, err := c.FetchCase(ctx, caseURL)
	if err != nil {
		return "", err
	}
	if zaak.Result == "" {
		return "", nil
	}

	var result caseResult
	if err := c.do(ctx, http.MethodGet, zaak.Result, nil, &result); err != nil {
		return "", err
	}

	var rt resultType
	if err := c.do(ctx, http.MethodGet, result.ResultType, nil, &rt); err != nil {
		return "", err
	}

	return rt.Description, nil
}

type caseDocumentRelation struct {
	URL      string `json:"url"`
	Document string `json:"informatieobject"`
}

type documentMeta struct {
	Size int64 `json:"bestandsomvang"`
}

// DeleteCase sums the sizes of the related documents before issuing the
// delete. The Zaken API cascades the delete to relations and documents.
func (c *client) DeleteCase(ctx context.Context, caseURL string) (int64, error) {
	listURL := c.cfg.BaseURL + "/zaakinformatieobjecten?zaak=" + url.QueryEscape(caseURL)

	var relations []caseDocumentRelation
	if err := c.do(ctx, http.MethodGet, listURL, nil, &relations); err != nil {
		return 0, err
	}

	var totalBytes int64
	for _, rel := range relations {
		var meta documentMeta
		if err := c.do(ctx, http.MethodGet, rel.Document, nil, &meta); err != nil {
			return 0, err
		}
		totalBytes += meta.Size
	}

	if err := c.do(ctx, http.MethodDelete, caseURL, nil, nil); err != nil {
		return 0, err
	}

	return totalBytes, nil
}

func (c *client) UpdateArchiveData(ctx context.Context, caseURL string, update ArchiveUpdate) (*Case, error) {
	var zaak Case
	if err := c.do(ctx, http.MethodPatch, caseURL, update, &zaak); err != nil {
		return nil, err
	}
	return &zaak, nil
}

func (c *client) CreateCase(ctx context.Context, req *CreateCaseRequest) (*Case, error) {
	var zaak Case
	if err := c.do(ctx, http.MethodPost, c.cfg.BaseURL+"/zaken", req, &zaak); err != nil {
		return nil, err
	}
	return &zaak, nil
}

type createDocumentRequest struct {
	Source               string `json:"bronorganisatie"`
	CreationDate         string `json:"creatiedatum"`
	Title                string `json:"titel"`
	Author               string `json:"auteur"`
	Language             string `json:"taal"`
	FileName             string `json:"bestandsnaam"`
	Content              string `json:"inhoud"`
	ContentType          string `json:"formaat"`
	DocumentType         string `json:"informatieobjecttype"`
	ConfidentialityLevel string `json:"vertrouwelijkheidaanduiding"`
}

type createdDocument struct {
	URL string `json:"url"`
}

func (c *client) AddReportDocument(ctx context.Context, caseURL string, doc *ReportDocument) error {
	if c.cfg.DocumentsBaseURL == "" {
		return goerr.New("documents base URL is not configured")
	}

	docReq := &createDocumentRequest{
		Source:               doc.Source,
		CreationDate:         time.Now().UTC().Format("2006-01-02"),
		Title:                doc.Title,
		Author:               c.cfg.ClientID,
		Language:             "nld",
		FileName:             doc.FileName,
		Content:              base64.StdEncoding.EncodeToString(doc.Content),
		ContentType:          doc.ContentType,
		DocumentType:         doc.DocumentType,
		ConfidentialityLevel: "intern",
	}

	var created createdDocument
	if err := c.do(ctx, http.MethodPost, c.cfg.DocumentsBaseURL+"/enkelvoudiginformatieobjecten", docReq, &created); err != nil {
		return err
	}

	relation := map[string]string{
		"zaak":             caseURL,
		"informatieobject": created.URL,
	}
	return c.do(ctx, http.MethodPost, c.cfg.BaseURL+"/zaakinformatieobjecten", relation, nil)
}

func (c *client) SetOutcome(ctx context.Context, caseURL, resultTypeURL string) error {
	body := map[string]string{
		"zaak":          caseURL,
		"resultaattype": resultTypeURL,
	}
	return c.do(ctx, http.MethodPost, c.cfg.BaseURL+"/resultaten", body, nil)
}
