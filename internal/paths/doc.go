// Provides platform-appropriate paths and permission modes for the tool.
//
// All paths follow XDG conventions on Linux and platform-native conventions
// on macOS and Windows. The tool name "guestbake" is used as the
// subdirectory under each base path.
package paths
