package submission

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/wailsapp/mimetype"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/srvcerr"
)

const maxFileSize = 10 * 1024 * 1024 // 10MB

// SubmitFile records a file submission: the file is stored in the blob
// store and its reference becomes the submission content. The original
// file name is kept for display.
func (s *SubmissionSrvc) SubmitFile(ctx context.Context, p auth.Principal, assignmentID uuid.UUID, fileName string, content []byte) (*Submission, error) {
	if err := auth.Require(p, auth.RoleStudent); err != nil {
		return nil, err
	}

	if len(content) == 0 {
		return nil, newErrInvalidFile("no file was uploaded")
	}
	if len(content) > maxFileSize {
		return nil, newErrInvalidFile("file size exceeds 10MB limit")
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if err := checkFileType(ext, content); err != nil {
		return nil, err
	}

	ref, err := s.blobs.Store(ctx, content, fmt.Sprintf("%s%s", uuid.New(), ext))
	if err != nil {
		return nil, srvcerr.ErrInternalSE().SetDebug(fmt.Errorf("failed to store submission file: %w", err))
	}

	return s.submit(ctx, p, assignmentID, ref, fileName)
}

// checkFileType combines the extension allowlist of the upload form
// with content sniffing, so a renamed binary does not pass as a document.
func checkFileType(ext string, content []byte) error {
	mtype := mimetype.Detect(content)
	switch ext {
	case ".pdf":
		if mtype.Is("application/pdf") {
			return nil
		}
	case ".txt":
		if mtype.Is("text/plain") {
			return nil
		}
	case ".doc":
		if mtype.Is("application/msword") || mtype.Is("application/x-ole-storage") {
			return nil
		}
	case ".docx":
		if mtype.Is("application/vnd.openxmlformats-officedocument.wordprocessingml.document") ||
			mtype.Is("application/zip") {
			return nil
		}
	default:
		return newErrInvalidFile("invalid file type, allowed types: PDF, DOC, DOCX, TXT")
	}
	return newErrInvalidFile(fmt.Sprintf("file content does not match its %s extension", ext))
}
