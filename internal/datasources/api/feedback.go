package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/claraboia/jcreader/internal/domain"
)

const feedbackPath = "/feedback/enviar/"

// SubmitFeedback uploads the feedback form as multipart, with the optional
// screenshot attached as "imagem".
func (c *Client) SubmitFeedback(ctx context.Context, feedback domain.Feedback) (domain.FeedbackReceipt, error) {
	body, contentType, err := feedbackForm(feedback)
	if err != nil {
		return domain.FeedbackReceipt{}, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, feedbackPath, body)
	if err != nil {
		return domain.FeedbackReceipt{}, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	c.withCSRF(req)

	resp, err := c.do(req)
	if err != nil {
		return domain.FeedbackReceipt{}, err
	}

	var receipt domain.FeedbackReceipt
	if err := decodeFormJSON(resp, &receipt); err != nil {
		return domain.FeedbackReceipt{}, fmt.Errorf("submitting feedback: %w", err)
	}
	return receipt, nil
}

func feedbackForm(feedback domain.Feedback) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"avaliacao", strconv.Itoa(feedback.Rating)},
		{"comentario", strings.TrimSpace(feedback.Comment)},
		{"nome", feedback.Name},
		{"email", feedback.Email},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("writing form field %s: %w", f.name, err)
		}
	}

	if feedback.ImagePath != "" {
		if err := attachFile(w, "imagem", feedback.ImagePath); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func attachFile(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening attachment: %w", err)
	}
	defer func() { _ = f.Close() }()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copying attachment: %w", err)
	}
	return nil
}
