package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"thinkquest_backend/internal/service"
	"thinkquest_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	m.Run()
}

func avatarRouter() *gin.Engine {
	ctrl := NewAvatarController(service.NewAvatarService(nil))
	router := gin.New()
	router.GET("/api/rpm-avatar-proxy", ctrl.Proxy)
	return router
}

func TestAvatarProxyReturnsBinary(t *testing.T) {
	payload := []byte("glTF-binary-bytes")
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer upstream.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rpm-avatar-proxy?url="+upstream.URL, nil)
	avatarRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "model/gltf-binary", w.Header().Get("Content-Type"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "17", w.Header().Get("Content-Length"))
	assert.Equal(t, payload, w.Body.Bytes())
}

func TestAvatarProxyMissingURL(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rpm-avatar-proxy", nil)
	avatarRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing URL query parameter.")
}

func TestAvatarProxyUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rpm-avatar-proxy?url="+upstream.URL, nil)
	avatarRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to proxy avatar.")
}
