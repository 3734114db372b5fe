package nl2sparql

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
)

// MockChat replays scripted LLM replies in order and records each call.
type MockChat struct {
	ResponseQueue []string
	Calls         []string
	Err           error
}

func (m *MockChat) Chat(ctx context.Context, system, user string, temperature float32) (string, error) {
	m.Calls = append(m.Calls, user)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.ResponseQueue) > 0 {
		resp := m.ResponseQueue[0]
		m.ResponseQueue = m.ResponseQueue[1:]
		return resp, nil
	}
	return "", nil
}

// spotlightServer fakes the annotate endpoint with fixed surface/URI pairs.
func spotlightServer(pairs ...[2]string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Resources": [`)
		for i, p := range pairs {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"@surfaceForm": %q, "@URI": "http://dbpedia.org/resource/%s"}`, p[0], p[1])
		}
		fmt.Fprint(w, `]}`)
	}))
}

// sparqlServer fakes the endpoint, routing on the incoming query text.
func sparqlServer(handler func(query string) string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, handler(r.URL.Query().Get("query")))
	}))
}

func bindingsJSON(rows ...string) string {
	out := `{"results": {"bindings": [`
	for i, r := range rows {
		if i > 0 {
			out += ","
		}
		out += r
	}
	return out + `]}}`
}

func uriRow(varName, uri string) string {
	return fmt.Sprintf(`{%q: {"type": "uri", "value": %q}}`, varName, uri)
}

func literalRow(varName, value string) string {
	return fmt.Sprintf(`{%q: {"type": "literal", "value": %q}}`, varName, value)
}
