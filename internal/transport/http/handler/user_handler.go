package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-user-management/internal/core/auth"
	"go-user-management/internal/service"
	mdw "go-user-management/internal/transport/http/middleware"
	resp "go-user-management/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
	authn *service.AuthService
	roles *service.RoleService
	log   *zap.Logger
}

func NewUserHandler(users *service.UserService, authn *service.AuthService, roles *service.RoleService, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, authn: authn, roles: roles, log: log}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GET /users/roles — public
func (h *UserHandler) ListRoles(c *gin.Context) {
	names, err := h.roles.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// GET /users — Administrator only
func (h *UserHandler) List(c *gin.Context) {
	caller := mdw.Caller(c)
	if caller == nil {
		resp.Fail(c, http.StatusUnauthorized, "")
		return
	}
	if !caller.IsAdmin() {
		resp.Fail(c, http.StatusForbidden, "")
		return
	}
	users, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /users/:uid — Administrator or the user itself
func (h *UserHandler) Get(c *gin.Context) {
	uid := c.Param("uid")
	if h.requireSelfOrAdmin(c, uid) == nil {
		return
	}
	u, err := h.users.GetByUID(c.Request.Context(), uid)
	if err != nil {
		h.fail(c, err)
		return
	}
	if u == nil {
		resp.Fail(c, http.StatusNotFound, "")
		return
	}
	c.JSON(http.StatusOK, u)
}

// POST /users — open registration; the escalation gate decides whether the
// requested roles are allowed for this caller
func (h *UserHandler) Create(c *gin.Context) {
	var req service.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.users.Create(c.Request.Context(), &req, mdw.Caller(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// PUT /users/:uid — Administrator or the user itself
func (h *UserHandler) Edit(c *gin.Context) {
	uid := c.Param("uid")
	caller := h.requireSelfOrAdmin(c, uid)
	if caller == nil {
		return
	}
	var req service.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.users.Edit(c.Request.Context(), uid, &req, caller)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DELETE /users/:uid — Administrator or the user itself
func (h *UserHandler) Delete(c *gin.Context) {
	uid := c.Param("uid")
	if h.requireSelfOrAdmin(c, uid) == nil {
		return
	}
	ok, err := h.users.Delete(c.Request.Context(), uid)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !ok {
		resp.Fail(c, http.StatusNotFound, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"uid": uid})
}

// POST /users/login — public
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.authn.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// requireSelfOrAdmin enforces the ownership rule for /users/:uid routes.
// Anonymous → 401, authenticated but neither admin nor owner → 403. Returns
// nil after writing the response when access is denied.
func (h *UserHandler) requireSelfOrAdmin(c *gin.Context, targetUID string) *auth.CallerIdentity {
	caller := mdw.Caller(c)
	if caller == nil {
		resp.Fail(c, http.StatusUnauthorized, "")
		return nil
	}
	if !auth.CanAccessOwnResource(caller.UID, targetUID, caller.IsAdmin()) {
		resp.Fail(c, http.StatusForbidden, "")
		return nil
	}
	return caller
}

func (h *UserHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		resp.Fail(c, http.StatusUnauthorized, "")
	case errors.Is(err, service.ErrForbidden):
		resp.Fail(c, http.StatusForbidden, "")
	case errors.Is(err, service.ErrNotFound):
		resp.Fail(c, http.StatusNotFound, "")
	case errors.Is(err, service.ErrEmailTaken):
		resp.Fail(c, http.StatusConflict, service.ErrEmailTaken.Error())
	default:
		h.log.Error("request failed", zap.Error(err))
		resp.Fail(c, http.StatusInternalServerError, "")
	}
}
