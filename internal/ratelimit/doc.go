// Package ratelimit paces outbound API requests per endpoint category so
// the game server never needs to throttle the client. Each category keeps a
// sliding window of admit timestamps; callers block in Acquire until the
// window has room.
package ratelimit
