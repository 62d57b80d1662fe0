package controllers

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var errMalformedID = errors.New("malformed id")

// parseID validates a numeric path id. A malformed id is a 400, distinct
// from a well-formed id that matches nothing (404).
func parseID(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errMalformedID
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errMalformedID
	}
	return uint(id), nil
}

func parsePagination(pageStr, limitStr string) (int, int) {
	page := 1
	limit := 10
	if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
		limit = l
	}
	return page, limit
}

// pageEnvelope is the uniform list response shape across all entity kinds.
func pageEnvelope(items interface{}, page, limit int, total int64) gin.H {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return gin.H{
		"items":       items,
		"page":        page,
		"limit":       limit,
		"total":       total,
		"total_pages": totalPages,
		"has_prev":    page > 1,
		"has_next":    page < totalPages,
	}
}

// formFiles returns the uploaded files under field, tolerating requests that
// carry no multipart body at all.
func formFiles(ctx *gin.Context, field string) []*multipart.FileHeader {
	form, err := ctx.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}

// orKeep returns the trimmed submitted value, or current when the field was
// left empty. Update forms omit fields they do not change.
func orKeep(submitted, current string) string {
	if s := strings.TrimSpace(submitted); s != "" {
		return s
	}
	return current
}
