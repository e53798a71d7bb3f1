// SPDX-License-Identifier: Apache-2.0

// Package transcode shells out to external encoders for formats the
// native Go codecs cannot write, primarily MP3.
//
// Two backends are provided:
//   - FFmpegEncoder pipes raw f32le PCM into ffmpeg and lets the output
//     extension select codec and container.
//   - LameEncoder stages a temporary WAV and runs lame, used as the
//     fallback when ffmpeg is unavailable.
//
// Backends are located with exec.LookPath at construction time; a
// missing binary surfaces as ErrBackendNotFound so the save pipeline
// can drop the backend from its fallback chain instead of failing
// every call. Failed invocations return *ExecError with the captured
// exit code and stderr.
package transcode
