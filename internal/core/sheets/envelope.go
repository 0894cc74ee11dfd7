package sheets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// The gviz endpoint wraps its JSON payload in a JavaScript callback.
const (
	EnvelopePrefix = "/*O_o*/\ngoogle.visualization.Query.setResponse("
	EnvelopeSuffix = ");"
)

// ParseOptions controls how a response body becomes a Table.
type ParseOptions struct {
	// SkipHeaderRow drops row 0 before returning. Some sheets repeat their
	// header as the first data row; others publish it only as column labels.
	SkipHeaderRow bool
}

type gvizResponse struct {
	Status string      `json:"status"`
	Errors []gvizError `json:"errors"`
	Table  *struct {
		Cols []Column `json:"cols"`
		Rows *[]Row   `json:"rows"`
	} `json:"table"`
}

type gvizError struct {
	Reason          string `json:"reason"`
	Message         string `json:"message"`
	DetailedMessage string `json:"detailed_message"`
}

// Unwrap strips the fixed envelope from a response body and returns the
// JSON payload inside it.
func Unwrap(body []byte) ([]byte, error) {
	body = bytes.TrimRight(body, " \t\r\n")
	if len(body) < len(EnvelopePrefix)+len(EnvelopeSuffix) {
		return nil, fmt.Errorf("%w: body too short (%d bytes)", ErrMalformedEnvelope, len(body))
	}
	if !bytes.HasPrefix(body, []byte(EnvelopePrefix)) {
		return nil, fmt.Errorf("%w: missing response prefix", ErrMalformedEnvelope)
	}
	if !bytes.HasSuffix(body, []byte(EnvelopeSuffix)) {
		return nil, fmt.Errorf("%w: missing response suffix", ErrMalformedEnvelope)
	}

	return body[len(EnvelopePrefix) : len(body)-len(EnvelopeSuffix)], nil
}

// Parse decodes a raw endpoint response into a generic table.
func Parse(body []byte, opts ParseOptions) (Table, error) {
	payload, err := Unwrap(body)
	if err != nil {
		return Table{}, err
	}

	var resp gvizResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return Table{}, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}

	if resp.Status == "error" {
		return Table{}, fmt.Errorf("%w: source reported error: %s", ErrUnexpectedShape, describeErrors(resp.Errors))
	}
	if resp.Table == nil || resp.Table.Rows == nil {
		return Table{}, fmt.Errorf("%w: missing table.rows", ErrUnexpectedShape)
	}

	rows := *resp.Table.Rows
	if opts.SkipHeaderRow && len(rows) > 0 {
		rows = rows[1:]
	}

	return Table{Cols: resp.Table.Cols, Rows: rows}, nil
}

func describeErrors(errs []gvizError) string {
	if len(errs) == 0 {
		return "no detail"
	}

	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := e.DetailedMessage
		if msg == "" {
			msg = e.Message
		}
		if e.Reason != "" {
			msg = e.Reason + ": " + msg
		}
		parts = append(parts, msg)
	}
	return strings.Join(parts, "; ")
}
