package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/releaser/internal/contract"
	"github.com/alexanderramin/releaser/internal/domain"
)

const maxBodySize = 1 << 20 // 1MB

var statusByCode = map[contract.ErrorCode]int{
	contract.CodeNotFound:     http.StatusNotFound,
	contract.CodeInvalidInput: http.StatusBadRequest,
	contract.CodeConflict:     http.StatusConflict,
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func (s *Server) respondError(c *gin.Context, err error) {
	code := contract.CodeOf(err)
	status, ok := statusByCode[code]
	msg := err.Error()
	if !ok {
		status = http.StatusInternalServerError
		msg = "internal error"
		s.logger.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   msg,
		"code":    code,
	})
}

// bind decodes the JSON body into dst, answering 400 itself on failure.
func (s *Server) bind(c *gin.Context, dst any) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
	if err := c.ShouldBindJSON(dst); err != nil {
		s.respondError(c, fmt.Errorf("decoding request body: %w: %w", contract.ErrInvalidInput, err))
		return false
	}
	return true
}

// Projects

func (s *Server) handleListProjects(c *gin.Context) {
	all, _ := strconv.ParseBool(c.DefaultQuery("all", "false"))
	projects, err := s.svc.Projects.List(c.Request.Context(), all)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, mapSlice(projects, toProjectJSON))
}

func (s *Server) handleCreateProject(c *gin.Context) {
	var body createProjectBody
	if !s.bind(c, &body) {
		return
	}
	p := &domain.Project{Name: body.Name, Description: body.Description}
	if err := s.svc.Projects.Create(c.Request.Context(), p); err != nil {
		s.respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, toProjectJSON(p))
}

// Releases

func (s *Server) handleListReleases(c *gin.Context) {
	notes, err := s.svc.Releases.ListByProject(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, mapSlice(notes, toReleaseJSON))
}

func (s *Server) handleCreateRelease(c *gin.Context) {
	var body createReleaseBody
	if !s.bind(c, &body) {
		return
	}
	deployDate, err := parseDate(body.DeployDate)
	if err != nil {
		s.respondError(c, err)
		return
	}

	note, err := s.svc.Releases.Create(c.Request.Context(), contract.CreateReleaseRequest{
		ProjectID:  c.Param("projectID"),
		Title:      body.Title,
		Content:    body.Content,
		Summary:    body.Summary,
		BumpKind:   body.BumpKind,
		DeployDate: deployDate,
		IssueIDs:   body.IssueIDs,
		Actor:      body.Actor,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, toReleaseJSON(note))
}

func (s *Server) handleGetRelease(c *gin.Context) {
	detail, err := s.svc.Releases.GetByID(c.Request.Context(), c.Param("releaseID"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toDetailJSON(detail))
}

func (s *Server) handleUpdateRelease(c *gin.Context) {
	var body updateReleaseBody
	if !s.bind(c, &body) {
		return
	}
	req := contract.UpdateReleaseRequest{
		Title:    body.Title,
		Content:  body.Content,
		Summary:  body.Summary,
		Version:  body.Version,
		IssueIDs: body.IssueIDs,
		Actor:    body.Actor,
	}
	if body.DeployDate != nil {
		deployDate, err := parseDate(body.DeployDate)
		if err != nil {
			s.respondError(c, err)
			return
		}
		req.DeployDate = deployDate
		req.ClearDeployDate = deployDate == nil
	}

	note, err := s.svc.Releases.Update(c.Request.Context(), c.Param("releaseID"), req)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toReleaseJSON(note))
}

func (s *Server) handleDeleteRelease(c *gin.Context) {
	if err := s.svc.Releases.Delete(c.Request.Context(), c.Param("releaseID")); err != nil {
		s.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"id": c.Param("releaseID")})
}

// Opinions

func (s *Server) handleAddOpinion(c *gin.Context) {
	var body addOpinionBody
	if !s.bind(c, &body) {
		return
	}
	op, err := s.svc.Opinions.Add(c.Request.Context(), contract.AddOpinionRequest{
		ReleaseID: c.Param("releaseID"),
		Author:    body.Author,
		Content:   body.Content,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, toOpinionJSON(op))
}

func (s *Server) handleDeleteOpinion(c *gin.Context) {
	if err := s.svc.Opinions.Delete(c.Request.Context(), c.Param("opinionID")); err != nil {
		s.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"id": c.Param("opinionID")})
}

// Issues

func (s *Server) handleListIssues(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := c.Param("projectID")

	var (
		issues []*domain.Issue
		err    error
	)
	if linkable, _ := strconv.ParseBool(c.Query("linkable")); linkable {
		issues, err = s.svc.Issues.ListLinkable(ctx, projectID)
	} else {
		issues, err = s.svc.Issues.ListByProject(ctx, projectID)
	}
	if err != nil {
		s.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, mapSlice(issues, toIssueJSON))
}

func (s *Server) handleCreateIssue(c *gin.Context) {
	var body createIssueBody
	if !s.bind(c, &body) {
		return
	}
	issue, err := s.svc.Issues.Create(c.Request.Context(), contract.CreateIssueRequest{
		ProjectID: c.Param("projectID"),
		Title:     body.Title,
		Content:   body.Content,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, toIssueJSON(issue))
}

func (s *Server) handleUpdateLifeCycle(c *gin.Context) {
	var body lifeCycleBody
	if !s.bind(c, &body) {
		return
	}
	issue, err := s.svc.Issues.UpdateLifeCycle(c.Request.Context(), c.Param("issueID"), body.LifeCycle)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toIssueJSON(issue))
}
