package handler

import (
	"net/http"
)

func logRequest(req *http.Request, status int) {
	if status >= http.StatusBadRequest {
		log.Errorf("%s -- %s -- %s -- %d", req.RemoteAddr, req.Method, req.URL.Path, status)
		return
	}
	log.Infof("%s -- %s -- %s -- %d", req.RemoteAddr, req.Method, req.URL.Path, status)
}
