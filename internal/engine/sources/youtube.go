package sources

// YouTube implementation is split across files by responsibility:
//   youtube_url.go         video ID resolution from watch / short / embed URLs
//   youtube_innertube.go   Innertube API types, constants, and low-level HTTP primitives
//   youtube_metadata.go    video metadata + caption track discovery (MetadataSource)
//   youtube_transcript.go  caption fetch and subtitle markup stripping
//   analyze.go             Extractor: URL → engine.VideoRecord with transcript fallback
