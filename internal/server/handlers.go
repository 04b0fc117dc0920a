package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillvet/interviewd/internal/interview"
)

type StartRequest struct {
	CandidateName string `json:"candidateName"`
}

type StartResponse struct {
	InterviewID   string `json:"interviewId"`
	FirstQuestion string `json:"firstQuestion"`
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

type AnswerResponse struct {
	NextQuestion string `json:"nextQuestion"`
}

type EndResponse struct {
	Feedback string `json:"feedback"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Server) handleStart(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", interview.ErrValidation, err))
		return
	}

	session, err := s.orchestrator.Start(c.Request.Context(), req.CandidateName)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, StartResponse{
		InterviewID:   session.ID,
		FirstQuestion: session.Transcript[0].Text,
	})
}

func (s *Server) handleAnswer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", interview.ErrValidation, err))
		return
	}

	nextQuestion, err := s.orchestrator.SubmitAnswer(c.Request.Context(), c.Param("id"), req.Answer)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, AnswerResponse{NextQuestion: nextQuestion})
}

func (s *Server) handleEnd(c *gin.Context) {
	feedback, err := s.orchestrator.End(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, EndResponse{Feedback: feedback})
}

func (s *Server) handleList(c *gin.Context) {
	summaries, err := s.store.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func (s *Server) handleGet(c *gin.Context) {
	session, err := s.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (s *Server) handleDelete(c *gin.Context) {
	if err := s.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
