package jsonrepair

import (
	"path/filepath"
	"regexp"
	"strings"
)

// This file decides whether a string value being parsed looks enough like
// a filesystem or URL path that its backslashes should be treated as
// literal path separators rather than JSON escape introducers. The
// reference grammar has no notion of this; it is an addition layered on
// top of the string parser to avoid mangling Windows paths such as
// "C:\Users\name\file.txt" that LLMs frequently emit unescaped.

var (
	driveLetterRe   = regexp.MustCompile(`^[A-Za-z]:\\`)
	containsDriveRe = regexp.MustCompile(`[A-Za-z]:\\`)
	base64Re        = regexp.MustCompile(`^[A-Za-z0-9+/=]{20,}$`)
	fileExtensionRe = regexp.MustCompile(`(?i)\.[a-z0-9]{2,5}(\?|$|\\|"|/)`)
	unicodeEscapeRe = regexp.MustCompile(`\\u[0-9a-fA-F]{4}`)
	urlEncodingRe   = regexp.MustCompile(`%[0-9a-fA-F]{2}`)
)

func hasExcessiveEscapeSequences(content string) bool {
	if len(content) < 3 {
		return false
	}

	unicodeMatches := unicodeEscapeRe.FindAllString(content, -1)
	if len(unicodeMatches) >= 2 {
		totalUnicodeLength := len(unicodeMatches) * 6
		if float64(totalUnicodeLength)/float64(len(content)) > 0.6 {
			return true
		}
	}

	escapeCount := 0
	for i := 0; i < len(content)-1; i++ {
		if content[i] == '\\' {
			switch content[i+1] {
			case 'n', 't', 'r', 'b', 'f', '"', '\\':
				escapeCount++
			}
		}
	}

	if escapeCount > 0 && float64(escapeCount*2)/float64(len(content)) > 0.3 {
		return true
	}

	return false
}

func isLikelyTextBlob(content string) bool {
	if len(content) < 3 {
		return false
	}

	if strings.Contains(content, "  ") {
		return true
	}

	if strings.Contains(content, "\n") || strings.Contains(content, "\t") || strings.Contains(content, "\r") {
		return true
	}

	if strings.Contains(content, ". ") || strings.Contains(content, "! ") || strings.Contains(content, "? ") {
		return true
	}

	spaceCount := strings.Count(content, " ")
	if spaceCount > 5 {
		return true
	}

	if len(content) > 10 && content[0] >= 'A' && content[0] <= 'Z' && spaceCount > 2 {
		lowercaseAfterSpace := 0
		foundSpace := false
		for _, r := range content[1:] {
			if r == ' ' {
				foundSpace = true
			} else if foundSpace && r >= 'a' && r <= 'z' {
				lowercaseAfterSpace++
			}
		}
		if lowercaseAfterSpace >= 3 {
			return true
		}
	}

	return false
}

func isBase64String(content string) bool {
	if len(content) < 20 {
		return false
	}
	return base64Re.MatchString(content)
}

func hasURLEncoding(content string) bool {
	return urlEncodingRe.MatchString(content)
}

func isWindowsAbsolutePath(content string) bool {
	return driveLetterRe.MatchString(content) || containsDriveRe.MatchString(content)
}

func isUNCPath(content string) bool {
	if !strings.HasPrefix(content, `\\`) || strings.HasPrefix(content, `\\\\`) {
		return false
	}

	parts := strings.Split(content, `\`)
	return len(parts) >= 4 && len(parts[2]) > 0 && len(parts[3]) > 0
}

func isUnixAbsolutePath(content string) bool {
	return strings.HasPrefix(content, "/") || strings.HasPrefix(content, "~/")
}

func isURLPath(content string) bool {
	lowerContent := strings.ToLower(content)

	if strings.HasPrefix(lowerContent, "http://") || strings.HasPrefix(lowerContent, "https://") {
		return false
	}

	if strings.HasPrefix(lowerContent, "file://") {
		pathPart := content[7:]
		return len(pathPart) > 1 && hasValidPathStructure(pathPart)
	}

	if strings.HasPrefix(lowerContent, "smb://") {
		pathPart := content[6:]
		return len(pathPart) > 1 && hasValidPathStructure(pathPart)
	}

	if strings.HasPrefix(lowerContent, "ftp://") {
		pathPart := content[6:]
		if slashIndex := strings.Index(pathPart, "/"); slashIndex > 0 {
			return hasValidPathStructure(pathPart[slashIndex:])
		}
	}

	return false
}

func containsPathSeparator(content string) bool {
	return strings.Contains(content, "/") || strings.Contains(content, "\\")
}

func countValidPathSegments(content, separator string) int {
	parts := strings.Split(content, separator)
	meaningfulParts := 0
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) > 0 && part != "." && part != ".." {
			meaningfulParts++
		}
	}
	return meaningfulParts
}

func hasFileExtension(content string) bool {
	ext := filepath.Ext(content)
	if len(ext) > 1 && len(ext) <= 6 {
		return true
	}
	return fileExtensionRe.MatchString(content)
}

func hasValidPathStructure(pathStr string) bool {
	if len(pathStr) < 2 {
		return false
	}

	if !containsPathSeparator(pathStr) {
		return false
	}

	separator := "/"
	if strings.Contains(pathStr, "\\") {
		separator = "\\"
	}

	meaningfulParts := countValidPathSegments(pathStr, separator)
	if meaningfulParts < 2 {
		return false
	}

	if hasFileExtension(pathStr) {
		return true
	}

	if meaningfulParts >= 3 {
		return true
	}

	lowerPath := strings.ToLower(pathStr)

	windowsDirs := []string{
		"program files", "windows", "users", "temp", "system32", "documents", "programdata",
		"desktop", "downloads", "music", "pictures", "videos", "appdata", "roaming", "public",
		"inetpub", "wwwroot", "node_modules", "npm",
	}
	for _, dir := range windowsDirs {
		if strings.Contains(lowerPath, dir) {
			return true
		}
	}

	if strings.HasPrefix(pathStr, "/") {
		unixDirs := []string{
			"/bin/", "/etc/", "/var/", "/usr/", "/opt/", "/home/", "/tmp/", "/lib/",
			"/proc/", "/dev/", "/sys/", "/run/", "/srv/", "/mnt/", "/media/", "/boot/",
			"/Applications/", "/Library/", "/System/", "/Users/",
		}
		for _, dir := range unixDirs {
			if strings.Contains(lowerPath, dir) {
				return true
			}
		}
	}

	return false
}

func isValidPathCharacter(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '/' || r == '\\' || r == ':' || r == '.' ||
		r == '-' || r == '_' || r == ' ' || r == '~'
}

func hasReasonableCharacterDistribution(content string) bool {
	if len(content) == 0 {
		return false
	}

	validChars := 0
	for _, r := range content {
		if isValidPathCharacter(r) {
			validChars++
		}
	}

	return float64(validChars)/float64(len(content)) >= 0.7
}

// isLikelyFilePath decides, via a layered set of exclusions and
// format-specific checks, whether content read out of a JSON string looks
// like a filesystem or URL path.
func isLikelyFilePath(content string) bool {
	if len(content) < 2 {
		return false
	}

	lowerContent := strings.ToLower(content)
	if strings.HasPrefix(lowerContent, "http://") || strings.HasPrefix(lowerContent, "https://") {
		return false
	}

	if strings.HasPrefix(lowerContent, "ftp://") && !strings.Contains(content[6:], "/") {
		return false
	}

	if hasExcessiveEscapeSequences(content) {
		return false
	}

	if isLikelyTextBlob(content) {
		return false
	}

	if isBase64String(content) {
		return false
	}

	if hasURLEncoding(content) {
		return false
	}

	if isURLPath(content) {
		return true
	}

	if isWindowsAbsolutePath(content) {
		return true
	}

	if isUNCPath(content) {
		return true
	}

	if isUnixAbsolutePath(content) {
		return true
	}

	windowsPatterns := []string{
		"program files", "system32", "windows\\", "programdata",
		"users\\", "documents", "desktop", "downloads", "music", "pictures", "videos", "appdata", "roaming", "public",
		"temp\\", "fonts", "startup", "sendto", "recent", "nethood", "cookies", "cache", "history", "favorites", "templates",
	}
	for _, pattern := range windowsPatterns {
		if strings.Contains(lowerContent, pattern) && containsPathSeparator(content) {
			return true
		}
	}

	if strings.Contains(content, "/") {
		unixPatterns := []string{
			"/bin/", "/etc/", "/var/", "/usr/", "/opt/", "/home/", "/tmp/", "/lib/", "/lib64/",
			"/proc/", "/dev/", "/sys/", "/run/", "/srv/", "/mnt/", "/media/", "/boot/", "/snap/",
			"/usr/share/", "/usr/local/", "/usr/src/", "/var/log/", "/var/lib/", "/var/cache/", "/var/spool/",
			"/Applications/", "/Library/", "/System/", "/Users/",
		}
		for _, pattern := range unixPatterns {
			if strings.Contains(lowerContent, pattern) {
				return true
			}
		}
	}

	if !containsPathSeparator(content) {
		return false
	}

	if hasFileExtension(content) {
		commonFileExts := []string{
			".config", ".cfg", ".ini", ".conf", ".properties", ".toml",
			".json", ".xml", ".yml", ".yaml", ".csv", ".tsv",
			".backup", ".bak", ".old", ".tmp", ".temp", ".swp", ".~",
			".log", ".out", ".err", ".debug", ".trace",
			".db", ".sqlite", ".sqlite3", ".mdb",
			".txt", ".md", ".readme", ".doc", ".docx", ".pdf",
			".zip", ".tar", ".gz", ".rar", ".7z", ".bz2", ".xz",
			".js", ".ts", ".py", ".go", ".java", ".cpp", ".c", ".h", ".cs", ".php", ".rb", ".rs",
			".mp3", ".mp4", ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp", ".svg", ".ico",
			".dat", ".bin", ".raw", ".dump",
		}
		for _, ext := range commonFileExts {
			if strings.HasSuffix(lowerContent, ext) {
				return true
			}
		}
	}

	if !hasReasonableCharacterDistribution(content) {
		return false
	}

	return hasValidPathStructure(content)
}

// analyzePotentialFilePath looks ahead from the opening quote at startPos
// and decides whether the string about to be parsed is likely a file
// path, without consuming any input (the real string parser re-scans the
// same region).
func analyzePotentialFilePath(text []rune, startPos int) bool {
	if startPos >= len(text) || text[startPos] != '"' {
		return false
	}

	i := startPos + 1
	var contentBuilder strings.Builder
	hasPathSeparator := false

	for i < len(text) && i < startPos+150 {
		char := text[i]

		if char == '"' {
			break
		}

		if char == '\\' || char == '/' {
			hasPathSeparator = true
		}

		if char == '\\' && i+1 < len(text) {
			nextChar := text[i+1]
			switch nextChar {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				contentBuilder.WriteRune(char)
				contentBuilder.WriteRune(nextChar)
				i += 2
				continue
			case 'u':
				if i+5 < len(text) {
					for j := 0; j < 6; j++ {
						contentBuilder.WriteRune(text[i+j])
					}
					i += 6
					continue
				}
			}
		}

		contentBuilder.WriteRune(char)
		i++
	}

	content := contentBuilder.String()

	if len(content) < 3 {
		return false
	}

	if !hasPathSeparator {
		return false
	}

	return isLikelyFilePath(content)
}
