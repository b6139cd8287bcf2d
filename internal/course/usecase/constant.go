package usecase

const (
	LogPrefixUpload    = "internal.course.usecase.Upload"
	LogPrefixSync      = "internal.course.usecase.Sync"
	LogPrefixExportICS = "internal.course.usecase.ExportICS"

	icsUIDDomain   = "course-outline-planner"
	icsFileExt     = ".ics"
	icsDefaultName = "course"
)
