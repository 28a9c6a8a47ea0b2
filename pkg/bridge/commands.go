package bridge

import "time"

// Command names understood by the remote host. The strings are sent
// verbatim in the request's "type" field.
const (
	CmdExecuteCode            = "execute_code"
	CmdGetSceneInfo           = "get_scene_info"
	CmdGetViewportScreenshot  = "get_viewport_screenshot"
	CmdGetPolyhavenStatus     = "get_polyhaven_status"
	CmdGetHyper3DStatus       = "get_hyper3d_status"
	CmdGetSketchfabStatus     = "get_sketchfab_status"
	CmdCreateRodinJob         = "create_rodin_job"
	CmdPollRodinJobStatus     = "poll_rodin_job_status"
	CmdImportGeneratedAsset   = "import_generated_asset"
	CmdSearchSketchfabModels  = "search_sketchfab_models"
	CmdDownloadSketchfabModel = "download_sketchfab_model"
	CmdSearchPolyhavenAssets  = "search_polyhaven_assets"
	CmdDownloadPolyhavenAsset = "download_polyhaven_asset"
)

// Per-command response deadlines. Downloads and asset imports are slow
// (the host fetches from external services); job creation, polling and
// catalog searches are bounded by remote API latency; everything else is
// a local Blender operation.
const (
	downloadTimeout = 120 * time.Second
	jobTimeout      = 30 * time.Second
	defaultTimeout  = 15 * time.Second
)

var commandTimeouts = map[string]time.Duration{
	CmdDownloadSketchfabModel: downloadTimeout,
	CmdDownloadPolyhavenAsset: downloadTimeout,
	CmdImportGeneratedAsset:   downloadTimeout,
	CmdCreateRodinJob:         jobTimeout,
	CmdPollRodinJobStatus:     jobTimeout,
	CmdSearchSketchfabModels:  jobTimeout,
	CmdSearchPolyhavenAssets:  jobTimeout,
}

// CommandTimeout returns the response deadline for a command type.
func CommandTimeout(commandType string) time.Duration {
	if d, ok := commandTimeouts[commandType]; ok {
		return d
	}
	return defaultTimeout
}
