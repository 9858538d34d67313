package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

type uploadResponse struct {
	ID string `json:"id"`
}

type signedURLResponse struct {
	URL string `json:"url"`
}

type processRequest struct {
	Model    string          `json:"model"`
	Document processDocument `json:"document"`
}

type processDocument struct {
	Type        string `json:"type"`
	DocumentURL string `json:"document_url"`
}

// Process uploads the PDF bytes, requests a signed retrieval URL and runs
// OCR against it. The structured page list is returned as-is.
func (s *implService) Process(ctx context.Context, pdf []byte, filename string) (*Result, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("MISTRAL_API_KEY is not set")
	}

	fileID, err := s.upload(ctx, pdf, filename)
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}

	signedURL, err := s.signedURL(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("signed url: %w", err)
	}

	result, err := s.process(ctx, signedURL)
	if err != nil {
		return nil, fmt.Errorf("process: %w", err)
	}

	s.logger.Debug(ctx, "OCR processed %s: %d pages", filename, len(result.Pages))
	return result, nil
}

func (s *implService) upload(ctx context.Context, pdf []byte, filename string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("purpose", "ocr"); err != nil {
		return "", err
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(pdf); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/files", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var upload uploadResponse
	if err := s.do(req, &upload); err != nil {
		return "", err
	}
	if upload.ID == "" {
		return "", fmt.Errorf("empty file id in upload response")
	}
	return upload.ID, nil
}

func (s *implService) signedURL(ctx context.Context, fileID string) (string, error) {
	u := fmt.Sprintf("%s/v1/files/%s/url?expiry=1", s.baseURL, fileID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")

	var signed signedURLResponse
	if err := s.do(req, &signed); err != nil {
		return "", err
	}
	if signed.URL == "" {
		return "", fmt.Errorf("empty signed url in response")
	}
	return signed.URL, nil
}

func (s *implService) process(ctx context.Context, documentURL string) (*Result, error) {
	payload, err := json.Marshal(processRequest{
		Model: s.model,
		Document: processDocument{
			Type:        "document_url",
			DocumentURL: documentURL,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/ocr", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	var result Result
	if err := s.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *implService) do(req *http.Request, out interface{}) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("ocr request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("ocr error: status=%d body=%s", resp.StatusCode, string(errBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode ocr response: %w", err)
	}
	return nil
}
