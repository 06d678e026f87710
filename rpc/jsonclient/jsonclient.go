// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonclient json rpc client of the node
package jsonclient

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

var requestID uint64

// JSONClient a object of jsonclient
type JSONClient struct {
	url    string
	client *http.Client
}

func addPrefix(url string) string {
	if strings.Contains(url, "://") {
		return url
	}
	return "http://" + url
}

// NewJSONClient produce a json object
func NewJSONClient(url string) (*JSONClient, error) {
	return &JSONClient{url: addPrefix(url), client: &http.Client{Timeout: 30 * time.Second}}, nil
}

type clientRequest struct {
	Method string         `json:"method"`
	Params [1]interface{} `json:"params"`
	ID     uint64         `json:"id"`
}

type clientResponse struct {
	ID     uint64           `json:"id"`
	Result *json.RawMessage `json:"result"`
	Error  interface{}      `json:"error"`
}

// Call method of jsonclient, result is decoded into resp
func (client *JSONClient) Call(method string, params, resp interface{}) error {
	req := &clientRequest{Method: method, ID: atomic.AddUint64(&requestID, 1)}
	req.Params[0] = params
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	postresp, err := client.client.Post(client.url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return errors.Wrap(err, "post")
	}
	defer postresp.Body.Close()
	b, err := io.ReadAll(postresp.Body)
	if err != nil {
		return errors.Wrap(err, "read body")
	}
	if postresp.StatusCode != http.StatusOK {
		return errors.Errorf("%s: %s", postresp.Status, strings.TrimSpace(string(b)))
	}
	cresp := &clientResponse{}
	if err := json.Unmarshal(b, &cresp); err != nil {
		return errors.Wrap(err, "decode response")
	}
	if cresp.Error != nil {
		if x, ok := cresp.Error.(string); ok {
			return errors.New(x)
		}
		return errors.Errorf("%v", cresp.Error)
	}
	if cresp.Result == nil {
		return errors.New("empty result")
	}
	if resp == nil {
		return nil
	}
	if raw, ok := resp.(*json.RawMessage); ok {
		*raw = *cresp.Result
		return nil
	}
	return json.Unmarshal(*cresp.Result, resp)
}
