package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

type Body interface {
	ToReader() (io.Reader, string, error)
}

type Parameter map[string]string

func (p Parameter) Encode() string {
	var parameters []string
	for key, value := range p {
		parameters = append(parameters, key+"="+url.QueryEscape(value))
	}
	sort.Strings(parameters)
	return strings.Join(parameters, "&")
}

type JSON map[string]any

func (j JSON) ToReader() (io.Reader, string, error) {
	b, err := json.Marshal(j)
	if err != nil {
		return nil, "", err
	}

	return bytes.NewBuffer(b), "application/json", nil
}

func (j JSON) GetString(key string) (string, error) {
	value, ok := j[key]
	if !ok {
		return "", fmt.Errorf("not found field %s", key)
	}

	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("invalid type of field %s (%T)", key, value)
	}

	return s, nil
}

type Response struct {
	Code    int
	Header  http.Header
	RawBody []byte
	Body    JSON
}

func (r *Response) OK() bool {
	return r.Code >= 200 && r.Code < 300
}

func bytesToJSON(b []byte) (JSON, error) {
	result := JSON{}
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, err
	}

	return result, nil
}
