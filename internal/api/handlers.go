package api

import (
	"encoding/json"
	"net/http"

	"golang-netman/internal/netman"
	"golang-netman/internal/pkg/version"
)

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.service.GetConfig()
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	WriteData(w, configInfoFrom(cfg))
}

func (s *Server) handlePutConfig(w http.ResponseWriter, r *http.Request) {
	var req ConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteInvalidRequest(w, "malformed request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		WriteValidationError(w, err.Error())
		return
	}

	cfg := req.toConfiguration()

	previous, err := s.service.GetConfig()
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	if err := s.service.SetConfig(r.Context(), cfg); err != nil {
		s.writeServiceError(w, err)
		return
	}

	WriteData(w, ConfigUpdateResult{Changed: !netman.Equal(previous, cfg)})
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	state, err := s.service.GetState(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	WriteData(w, StateInfo{ConfigInfo: configInfoFrom(state), Connected: state.IsConnected})
}

func (s *Server) handlePutHostname(w http.ResponseWriter, r *http.Request) {
	var req HostnameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteInvalidRequest(w, "malformed request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		WriteValidationError(w, err.Error())
		return
	}

	if err := s.service.SetHostname(r.Context(), req.Hostname); err != nil {
		s.writeServiceError(w, err)
		return
	}

	WriteData(w, HostnameInfo{Hostname: req.Hostname})
}

func (s *Server) handleGetStatus(w http.ResponseWriter, r *http.Request) {
	git := version.GetGitInfo()
	WriteData(w, StatusInfo{
		Interface: s.service.InterfaceName(),
		Ready:     s.service.Ready(),
		Version: VersionInfo{
			Commit: git.Commit,
			Branch: git.Branch,
			Tag:    git.Tag,
			Dirty:  git.Dirty,
		},
	})
}

// writeServiceError maps service error kinds to HTTP responses.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	kind, ok := netman.KindOf(err)
	if !ok {
		WriteInternalError(w, err.Error())
		return
	}

	switch kind {
	case netman.KindInvalidArgument:
		WriteError(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
	case netman.KindNotInitialized:
		WriteNotReady(w, err.Error())
	case netman.KindInterfaceError:
		WriteError(w, http.StatusInternalServerError, ErrCodeInterfaceError, err.Error())
	default:
		WriteInternalError(w, err.Error())
	}
}
