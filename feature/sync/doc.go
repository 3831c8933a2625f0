// Package sync downloads the game client's files from object storage into the
// local serve directory.
//
// It backs the 'pull' command: the serve path itself never touches the network,
// so teams that keep the client build in S3/MinIO run a pull once and then serve
// from disk. Objects are laid out on disk following their key hierarchy (minus
// the configured prefix), and objects whose local copy already matches the
// remote size are skipped.
package sync
