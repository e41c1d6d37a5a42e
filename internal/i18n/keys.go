package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyForbidden          = "error.forbidden"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyStorageUnavailable = "error.storage_unavailable"

	// ErrKeyTooManyUnits indicates a pack request expanding beyond the unit limit.
	ErrKeyTooManyUnits = "error.too_many_units"
	// ErrKeyContainerNotFound indicates an unknown container id.
	ErrKeyContainerNotFound = "error.container_not_found"
	// ErrKeyPresetReadOnly indicates an attempt to change a built-in container.
	ErrKeyPresetReadOnly = "error.preset_read_only"
	// ErrKeyIndexOutOfRange indicates a placement index outside the placed list.
	ErrKeyIndexOutOfRange = "error.index_out_of_range"
	ErrKeyManifestNotFound  = "error.manifest_not_found"
	ErrKeyUnsupportedFormat = "error.unsupported_format"
	ErrKeyInvalidManifest   = "error.invalid_manifest"
	ErrKeyNothingPlaced     = "error.nothing_placed"

	// ErrKeyIdempotencyInFlight indicates the first request with the same key has not finished.
	ErrKeyIdempotencyInFlight = "error.idempotency_in_flight"
	// ErrKeyIdempotencyMismatch indicates a key reused with a different request body.
	ErrKeyIdempotencyMismatch = "error.idempotency_mismatch"
	ErrKeyInvalidIdempotency  = "error.invalid_idempotency_key"
	ErrKeyInvalidLogFilter    = "error.invalid_log_filter"
)

// Constraint labels and descriptions, indexed by constraint tag.
const (
	ConstraintLabelPrefix       = "constraint.label."
	ConstraintDescriptionPrefix = "constraint.description."
)

// Report captions.
const (
	ReportKeyTitle             = "report.title"
	ReportKeyContainer         = "report.container"
	ReportKeyVolumeUsage       = "report.volume_usage"
	ReportKeyWeightUsage       = "report.weight_usage"
	ReportKeyPacked            = "report.packed"
	ReportKeyUnpacked          = "report.unpacked"
	ReportKeyTotalWeight       = "report.total_weight"
	ReportKeyTotalVolume       = "report.total_volume"
	ReportKeyUsedVolume        = "report.used_volume"
	ReportKeyTopView           = "report.top_view"
	ReportKeySideView          = "report.side_view"
	ReportKeyPlacements        = "report.placements"
	ReportKeyUnpackedItems     = "report.unpacked_items"
	ReportKeyItem              = "report.item"
	ReportKeyPosition          = "report.position"
	ReportKeyDimensions        = "report.dimensions"
	ReportKeyWeight            = "report.weight"
	ReportKeyConstraints       = "report.constraints"
	ReportKeySummary           = "report.summary"
	ReportKeyGeneratedAt       = "report.generated_at"
	ReportKeyNothingLeftBehind = "report.nothing_left_behind"
)
