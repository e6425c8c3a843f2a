package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-cms/pkg/models"
	"portfolio-cms/pkg/services"
)

func TestWatch_DeliversSnapshots(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store, err := services.NewFileStore(t.TempDir(), "portfolio-content", 0)
	require.NoError(t, err)
	svc := services.NewContentService(store, models.DefaultSnapshot(), nil)
	require.NoError(t, svc.Load())

	hub := NewHub(nil)
	go hub.Run()
	snapshots, cancel := svc.Subscribe()
	defer cancel()
	go func() {
		for snap := range snapshots {
			hub.Broadcast(snap)
		}
	}()

	r := gin.New()
	r.GET("/watch", Handler(hub, svc))
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/watch"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var env struct {
		Type    string          `json:"type"`
		Content models.Snapshot `json:"content"`
	}

	// Current snapshot arrives on connect.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&env))
	assert.Equal(t, "snapshot", env.Type)
	assert.Equal(t, models.DefaultSnapshot(), env.Content)

	field, ok := svc.FindByKey("heroTitle")
	require.True(t, ok)
	field.Value = "Broadcast me"
	require.NoError(t, svc.UpdateField(field))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&env))
	got, ok := services.FindByKey(env.Content, "heroTitle")
	require.True(t, ok)
	assert.Equal(t, "Broadcast me", got.Value)
}
