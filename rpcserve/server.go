// Package rpcserve exposes pipelines over JSON-RPC 2.0, letting
// editors and sidecars run replacements without shelling out. One
// connection serves document/replace, document/pipeline and
// document/ping.
package rpcserve

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.lsp.dev/jsonrpc2"

	"github.com/signadot/runnel"
	"github.com/signadot/runnel/debug"
	"github.com/signadot/runnel/decode"
	"github.com/signadot/runnel/encode"
	"github.com/signadot/runnel/stream"
	"github.com/signadot/runnel/value"
)

// ReplaceParams is the request for document/replace: one document
// plus a replacement and the column paths to write it at.
type ReplaceParams struct {
	Document    json.RawMessage `json:"document"`
	Replacement string          `json:"replacement"`
	Paths       []string        `json:"paths,omitempty"`
	Source      string          `json:"source,omitempty"`
}

type ReplaceResult struct {
	Document json.RawMessage `json:"document"`
}

// PipelineParams is the request for document/pipeline: a document
// sequence pushed through a parsed pipeline. The call is atomic; a
// failing stage fails the whole call.
type PipelineParams struct {
	Documents []json.RawMessage `json:"documents"`
	Pipeline  string            `json:"pipeline"`
	Source    string            `json:"source,omitempty"`
}

type PipelineResult struct {
	Documents []json.RawMessage `json:"documents"`
}

// Handler returns the jsonrpc2 handler serving the document methods.
func Handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		if debug.RPC() {
			debug.Logf("rpc %s\n", req.Method())
		}
		switch req.Method() {
		case "document/replace":
			return handleReplace(ctx, reply, req)
		case "document/pipeline":
			return handlePipeline(ctx, reply, req)
		case "document/ping":
			return reply(ctx, "pong", nil)
		}
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func handleReplace(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params := &ReplaceParams{}
	if err := json.Unmarshal(req.Params(), params); err != nil {
		return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err))
	}
	v, err := decode.Parse(params.Document, sourceName(params.Source))
	if err != nil {
		return reply(ctx, nil, err)
	}
	res, err := runnel.Replace(v, params.Replacement, params.Paths...)
	if err != nil {
		return reply(ctx, nil, err)
	}
	data, err := jsonBytes(res)
	if err != nil {
		return reply(ctx, nil, err)
	}
	return reply(ctx, &ReplaceResult{Document: data}, nil)
}

func handlePipeline(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params := &PipelineParams{}
	if err := json.Unmarshal(req.Params(), params); err != nil {
		return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err))
	}
	p, err := runnel.ParsePipeline(params.Pipeline)
	if err != nil {
		return reply(ctx, nil, err)
	}
	src := sourceName(params.Source)
	vs := make([]*value.Value, 0, len(params.Documents))
	for i, raw := range params.Documents {
		v, err := decode.Parse(raw, src)
		if err != nil {
			return reply(ctx, nil, fmt.Errorf("document %d: %w", i, err))
		}
		vs = append(vs, value.Retag(v, value.Tag{Source: src, Doc: i}))
	}
	out, err := stream.Collect(p.Chain(stream.FromValues(vs...)))
	if err != nil {
		return reply(ctx, nil, err)
	}
	res := &PipelineResult{Documents: make([]json.RawMessage, 0, len(out))}
	for _, v := range out {
		data, err := jsonBytes(v)
		if err != nil {
			return reply(ctx, nil, err)
		}
		res.Documents = append(res.Documents, data)
	}
	return reply(ctx, res, nil)
}

func sourceName(s string) string {
	if s == "" {
		return "rpc"
	}
	return s
}

func jsonBytes(v *value.Value) (json.RawMessage, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(v, buf, encode.EncodeFormat(encode.JSONFormat)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Serve answers requests over rwc until ctx is done or the peer
// disconnects.
func Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, Handler())
	select {
	case <-ctx.Done():
		conn.Close()
		<-conn.Done()
		return ctx.Err()
	case <-conn.Done():
		if err := conn.Err(); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
}
