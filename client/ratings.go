package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
)

// RatingSubmission adalah isi form penilaian order.
// Photo opsional; kalau ada, dikirim sebagai file multipart.
type RatingSubmission struct {
	Stars     int
	Comment   string
	PhotoName string
	Photo     io.Reader
}

// SubmitRating mengirim penilaian untuk satu order (multipart, bearer
// wajib).
func (c *Client) SubmitRating(ctx context.Context, orderID int, rating RatingSubmission) error {
	if rating.Stars < 1 || rating.Stars > 5 {
		return &APIError{Kind: KindBusiness, Message: "rating must be between 1 and 5"}
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("stars", strconv.Itoa(rating.Stars)); err != nil {
		return &APIError{Kind: KindTransport, Err: err}
	}
	if rating.Comment != "" {
		if err := writer.WriteField("comment", rating.Comment); err != nil {
			return &APIError{Kind: KindTransport, Err: err}
		}
	}
	if rating.Photo != nil {
		part, err := writer.CreateFormFile("photo", rating.PhotoName)
		if err != nil {
			return &APIError{Kind: KindTransport, Err: err}
		}
		if _, err := io.Copy(part, rating.Photo); err != nil {
			return &APIError{Kind: KindTransport, Err: err}
		}
	}
	if err := writer.Close(); err != nil {
		return &APIError{Kind: KindTransport, Err: err}
	}

	path := fmt.Sprintf("/ratings/%d", orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return &APIError{Kind: KindTransport, Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	if err := c.attachToken(req, true); err != nil {
		return err
	}

	_, err = c.send(req)
	return err
}
