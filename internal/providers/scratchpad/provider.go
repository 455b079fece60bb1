package scratchpad

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/Scratchpad/backend/internal/sandbox"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/types"
	"go.uber.org/zap"
)

// Provider exposes the sandboxed scratchpad as a service
type Provider struct {
	ops      *ScratchOps
	basic    *BasicOps
	folders  *FolderOps
	fileOps  *OperationsOps
	listing  *ListingOps
	search   *SearchOps
	metadata *MetadataOps
	formats  *FormatsOps
	archives *ArchiveOps
	utility  *UtilityOps
}

// NewProvider creates a scratchpad provider over a sandbox resolver
func NewProvider(resolver *sandbox.Resolver, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	ops := &ScratchOps{Resolver: resolver, Logger: logger}
	listing := &ListingOps{ScratchOps: ops}

	return &Provider{
		ops:      ops,
		basic:    &BasicOps{ScratchOps: ops},
		folders:  &FolderOps{ScratchOps: ops},
		fileOps:  &OperationsOps{ScratchOps: ops},
		listing:  listing,
		search:   &SearchOps{ListingOps: listing},
		metadata: &MetadataOps{ScratchOps: ops},
		formats:  &FormatsOps{ScratchOps: ops},
		archives: &ArchiveOps{ScratchOps: ops},
		utility:  &UtilityOps{ScratchOps: ops},
	}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.basic.GetTools()...)
	tools = append(tools, p.folders.GetTools()...)
	tools = append(tools, p.fileOps.GetTools()...)
	tools = append(tools, p.listing.GetTools()...)
	tools = append(tools, p.search.GetTools()...)
	tools = append(tools, p.metadata.GetTools()...)
	tools = append(tools, p.formats.GetTools()...)
	tools = append(tools, p.archives.GetTools()...)
	tools = append(tools, p.utility.GetTools()...)

	return types.Service{
		ID:          "scratchpad",
		Name:        "Scratchpad Service",
		Description: "File and folder operations inside a sandboxed scratch directory",
		Category:    types.CategoryScratchpad,
		Capabilities: []string{
			"create",
			"read",
			"update",
			"delete",
			"rename",
			"list",
			"search",
			"stat",
			"archive",
		},
		Tools: tools,
	}
}

// Execute runs a scratchpad operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "scratchpad.create_file":
		return p.basic.CreateFile(ctx, params, appCtx)
	case "scratchpad.read_file":
		return p.basic.ReadFile(ctx, params, appCtx)
	case "scratchpad.update_file":
		return p.basic.UpdateFile(ctx, params, appCtx)
	case "scratchpad.delete_file":
		return p.basic.DeleteFile(ctx, params, appCtx)
	case "scratchpad.create_folder":
		return p.folders.CreateFolder(ctx, params, appCtx)
	case "scratchpad.delete_folder":
		return p.folders.DeleteFolder(ctx, params, appCtx)
	case "scratchpad.rename":
		return p.fileOps.Rename(ctx, params, appCtx)
	case "scratchpad.list_files":
		return p.listing.ListFiles(ctx, params, appCtx)
	case "scratchpad.list_files_with_extensions":
		return p.listing.ListFilesWithExtensions(ctx, params, appCtx)
	case "scratchpad.list_all":
		return p.listing.ListAll(ctx, params, appCtx)
	case "scratchpad.find":
		return p.search.Find(ctx, params, appCtx)
	case "scratchpad.glob":
		return p.search.Glob(ctx, params, appCtx)
	case "scratchpad.stat":
		return p.metadata.Stat(ctx, params, appCtx)
	case "scratchpad.mime_type":
		return p.metadata.MimeType(ctx, params, appCtx)
	case "scratchpad.read_json":
		return p.formats.ReadJSON(ctx, params, appCtx)
	case "scratchpad.write_json":
		return p.formats.WriteJSON(ctx, params, appCtx)
	case "scratchpad.read_yaml":
		return p.formats.ReadYAML(ctx, params, appCtx)
	case "scratchpad.write_yaml":
		return p.formats.WriteYAML(ctx, params, appCtx)
	case "scratchpad.archive_folder":
		return p.archives.ArchiveFolder(ctx, params, appCtx)
	case "scratchpad.extract_archive":
		return p.archives.ExtractArchive(ctx, params, appCtx)
	case "scratchpad.get_time":
		return p.utility.GetTime(ctx, params, appCtx)
	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
