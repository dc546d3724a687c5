package server

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"em_casing/internal/casing"
	"em_casing/internal/config"
	"em_casing/internal/halfspace"
	"em_casing/internal/wire"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func dial(t *testing.T) *websocket.Conn {
	t.Helper()
	s := NewServer("", websocket.Upgrader{}, 2)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg any) Msg {
	t.Helper()
	require.NoError(t, conn.WriteJSON(msg))
	var reply Msg
	require.NoError(t, conn.ReadJSON(&reply))
	_, err := uuid.Parse(reply.ID)
	assert.NoError(t, err)
	return reply
}

func smallRequest() SolveRequest {
	c := config.Default().Casing
	c.Length = 50
	c.Segments = 10
	c.Filter = "140"
	return SolveRequest{
		Casing:  c,
		Wire:    []wire.Node{{X: 10}, {X: 500}},
		Current: 1,
		Method:  string(halfspace.MethodAnalytic),
	}
}

func TestSolveMessage(t *testing.T) {
	conn := dial(t)
	req := smallRequest()
	content, err := json.Marshal(req)
	require.NoError(t, err)

	reply := roundTrip(t, conn, Msg{Type: TypeSolve, Content: content})
	require.Equal(t, TypeSolved, reply.Type, reply.Error)
	var got SolveReply
	require.NoError(t, json.Unmarshal(reply.Content, &got))

	p := halfspace.DefaultParams()
	p.CasingLength = 50
	p.NumSegments = 10
	p.Filter = "140"
	m := &casing.Model{Params: p, Path: wire.NewPath(req.Wire...)}
	sol, err := m.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, newSolveReply(sol), got)
}

func TestSolveDefaultsFillMissingFields(t *testing.T) {
	conn := dial(t)
	content := json.RawMessage(`{"casing": {"length": 50, "segments": 5}, "wire": [{"x": 10}, {"x": 300}]}`)
	reply := roundTrip(t, conn, Msg{Type: TypeSolve, Content: content})
	require.Equal(t, TypeSolved, reply.Type, reply.Error)
	var got SolveReply
	require.NoError(t, json.Unmarshal(reply.Content, &got))
	assert.Len(t, got.Depths, 5)
	assert.Equal(t, 10.0, got.SegmentLength)
}

func TestErrorReplies(t *testing.T) {
	conn := dial(t)

	reply := roundTrip(t, conn, Msg{Type: "start"})
	assert.Equal(t, TypeError, reply.Type)
	assert.Contains(t, reply.Error, "unknown message type")

	bad := smallRequest()
	bad.Casing.Segments = 0
	content, err := json.Marshal(bad)
	require.NoError(t, err)
	reply = roundTrip(t, conn, Msg{Type: TypeSolve, Content: content})
	assert.Equal(t, TypeError, reply.Type)
	assert.Contains(t, reply.Error, "invalid parameters")

	bad = smallRequest()
	bad.Method = "numerical"
	content, err = json.Marshal(bad)
	require.NoError(t, err)
	reply = roundTrip(t, conn, Msg{Type: TypeSolve, Content: content})
	assert.Equal(t, TypeError, reply.Type)
	assert.Contains(t, reply.Error, "not recognized")

	bad = smallRequest()
	bad.Wire = []wire.Node{{X: 1}}
	content, err = json.Marshal(bad)
	require.NoError(t, err)
	reply = roundTrip(t, conn, Msg{Type: TypeSolve, Content: content})
	assert.Equal(t, TypeError, reply.Type)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	var raw Msg
	require.NoError(t, conn.ReadJSON(&raw))
	assert.Equal(t, TypeError, raw.Type)
	assert.Contains(t, raw.Error, "decoding message")

	// the connection survives bad requests
	content, err = json.Marshal(smallRequest())
	require.NoError(t, err)
	reply = roundTrip(t, conn, Msg{Type: TypeSolve, Content: content})
	assert.Equal(t, TypeSolved, reply.Type)
}

func TestRequestLimits(t *testing.T) {
	conn := dial(t)

	big := smallRequest()
	big.Casing.Segments = MaxSegments + 1
	content, err := json.Marshal(big)
	require.NoError(t, err)
	reply := roundTrip(t, conn, Msg{Type: TypeSolve, Content: content})
	assert.Equal(t, TypeError, reply.Type)
	assert.Contains(t, reply.Error, "too large")
	assert.Contains(t, reply.Error, "2001 segments")

	long := smallRequest()
	long.Wire = make([]wire.Node, MaxWireNodes+1)
	content, err = json.Marshal(long)
	require.NoError(t, err)
	reply = roundTrip(t, conn, Msg{Type: TypeSolve, Content: content})
	assert.Equal(t, TypeError, reply.Type)
	assert.Contains(t, reply.Error, "wire nodes")
}

func TestOversizedFrameClosesConnection(t *testing.T) {
	conn := dial(t)
	frame := `{"type": "solve", "error": "` + strings.Repeat("x", MaxMessageSize) + `"}`
	_ = conn.WriteMessage(websocket.TextMessage, []byte(frame))

	var reply Msg
	assert.Error(t, conn.ReadJSON(&reply))
}

func TestServeStopsOnCancel(t *testing.T) {
	s := NewServer("127.0.0.1:0", websocket.Upgrader{}, 1)
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.Serve(ctx) }()
	cancel()
	assert.NoError(t, <-errc)
}

func TestServeListenError(t *testing.T) {
	s := NewServer("127.0.0.1:-1", websocket.Upgrader{}, 1)
	assert.Error(t, s.Serve(context.Background()))
}
