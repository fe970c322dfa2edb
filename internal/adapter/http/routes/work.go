package routes

import (
	"nirman/internal/adapter/http/handlers"
	"nirman/internal/adapter/http/middleware"
	"nirman/internal/domain/auth"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth          = "/auth"
	PathWorkProposals = "/work-proposals"
	PathWorkProgress  = "/work-progress"
)

func addAuthRoutes(public, private *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	public.POST(PathAuth+"/login", authHandler.Login)
	private.GET(PathAuth+"/me", authHandler.Me)
}

func addWorkRoutes(
	rg *gin.RouterGroup,
	policy auth.Policy,
	proposalHandler *handlers.WorkProposalHandler,
	progressHandler *handlers.WorkProgressHandler,
) {
	can := func(capability auth.Capability) gin.HandlerFunc {
		return middleware.RequireCapability(policy, capability)
	}

	proposals := rg.Group(PathWorkProposals)
	{
		proposals.POST("", can(auth.CapCreateWork), proposalHandler.Create)
		proposals.GET("/:id", can(auth.CapViewProgress), proposalHandler.GetByID)
		proposals.POST("/:id/technical-approval", can(auth.CapApproveTechnical), proposalHandler.ApproveTechnical)
		proposals.POST("/:id/administrative-approval", can(auth.CapApproveAdministrative), proposalHandler.ApproveAdministrative)
		proposals.POST("/:id/tender", can(auth.CapManageTender), proposalHandler.AwardTender)
		proposals.POST("/:id/work-order", can(auth.CapIssueWorkOrder), proposalHandler.IssueWorkOrder)
		proposals.POST("/:id/cancel", can(auth.CapAdminister), proposalHandler.Cancel)
		proposals.POST("/:id/close", can(auth.CapAdminister), proposalHandler.Close)

		proposals.POST("/:id/progress", can(auth.CapRecordProgress), progressHandler.UpdateProgress)
		proposals.POST("/:id/progress/installment", can(auth.CapReleaseInstallment), progressHandler.AddInstallment)
		proposals.POST("/:id/progress/complete", can(auth.CapCompleteWork), progressHandler.CompleteWork)
		proposals.POST("/:id/progress/documents", can(auth.CapCompleteWork), proposalHandler.UploadDocument)
		proposals.GET("/:id/progress/history", can(auth.CapViewProgress), progressHandler.GetHistory)
	}

	dashboard := rg.Group(PathWorkProgress, can(auth.CapViewProgress))
	{
		dashboard.GET("", progressHandler.ListDashboard)
		dashboard.GET("/export", progressHandler.ExportDashboard)
	}
}
