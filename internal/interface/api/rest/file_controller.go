package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"files-manager-api/internal/application/ports"
	"files-manager-api/internal/domain/file"
	fileDTO "files-manager-api/internal/interface/api/rest/dto/file"
	"files-manager-api/internal/interface/api/rest/middleware"
	"files-manager-api/internal/interface/api/rest/validator"
)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	authService ports.Auth,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	auth := middleware.AuthMiddleware(logger, authService)
	r.POST(RouteFiles, auth, fc.UploadHandler)
	r.GET(RouteFile, auth, fc.ShowHandler)
	r.GET(RouteFiles, auth, fc.IndexHandler)

	return fc
}

func (fc *FileController) UploadHandler(c *gin.Context) {
	owner, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req fileDTO.UploadRequest
	// an empty body is an empty request, the validator names what is missing
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	f, err := fc.fileService.Upload(c.Request.Context(), owner, fileDTO.ToDomainUploadRequest(req))
	if err != nil {
		respondError(c, fc.logger, "Upload()", err)
		return
	}

	c.JSON(http.StatusCreated, fileDTO.ToResponseFile(*f))
}

func (fc *FileController) ShowHandler(c *gin.Context) {
	owner, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	f, err := fc.fileService.Show(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		respondError(c, fc.logger, "Show()", err)
		return
	}

	c.JSON(http.StatusOK, fileDTO.ToResponseFile(*f))
}

func (fc *FileController) IndexHandler(c *gin.Context) {
	owner, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	parentID := file.ParseQueryParent(c.Query("parentId"))
	page := validator.ParsePage(c.Query("page"))

	fs, err := fc.fileService.Index(c.Request.Context(), owner, parentID, page)
	if err != nil {
		respondError(c, fc.logger, "Index()", err)
		return
	}

	c.JSON(http.StatusOK, fileDTO.ToResponseFiles(fs))
}
