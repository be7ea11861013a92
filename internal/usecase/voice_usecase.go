package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"eldercare-manager-api/internal/converter"
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"
	"eldercare-manager-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrVoiceNotFound          = errors.New("voice timbre not found")
	ErrMissingAudioFile       = errors.New("reference audio file is required")
	ErrUnsupportedAudioFormat = errors.New("unsupported audio format")
)

// referenceSubdir is where uploaded reference audio lands under the
// configured upload path.
const referenceSubdir = "reference"

var allowedAudioExts = map[string]bool{
	".wav": true,
	".mp3": true,
	".m4a": true,
	".ogg": true,
}

type VoiceUsecase interface {
	Clone(ctx context.Context, req *dto.VoiceCloneRequest, filename string, audio io.Reader) (*dto.VoiceCloneResponse, error)
	List(ctx context.Context, userID int64) ([]dto.VoiceCloneResponse, error)
	GetByID(ctx context.Context, id string) (*dto.VoiceCloneResponse, error)
	Delete(ctx context.Context, id string) error
	TestSynthesis(ctx context.Context, req *dto.TestVoiceRequest) (string, error)
}

type voiceUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	timbreRepo repository.VoiceTimbreRepository
	uploadPath string
}

func NewVoiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	timbreRepo repository.VoiceTimbreRepository,
	uploadPath string,
) VoiceUsecase {
	return &voiceUsecase{
		db:         db,
		log:        log,
		timbreRepo: timbreRepo,
		uploadPath: uploadPath,
	}
}

// Clone stores the reference audio on disk and registers the timbre.
// Files are named voice_<epochMillis>_<uuid8>.<ext> so repeated uploads
// never collide.
func (u *voiceUsecase) Clone(ctx context.Context, req *dto.VoiceCloneRequest, filename string, audio io.Reader) (*dto.VoiceCloneResponse, error) {
	if audio == nil {
		return nil, ErrMissingAudioFile
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedAudioExts[ext] {
		return nil, ErrUnsupportedAudioFormat
	}

	dir := filepath.Join(u.uploadPath, referenceSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		u.log.Warnf("Failed to create upload directory: %+v", err)
		return nil, err
	}

	storedName := fmt.Sprintf("voice_%d_%s%s", time.Now().UnixMilli(), shortID(), ext)
	storedPath := filepath.Join(dir, storedName)

	dst, err := os.Create(storedPath)
	if err != nil {
		u.log.Warnf("Failed to create reference audio file: %+v", err)
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, audio); err != nil {
		u.log.Warnf("Failed to write reference audio file: %+v", err)
		os.Remove(storedPath)
		return nil, err
	}

	modelID := req.TTSModelID
	if modelID == "" {
		modelID = entity.DefaultTTSModelID
	}

	timbre := &entity.VoiceTimbre{
		ID:             strings.ReplaceAll(uuid.New().String(), "-", ""),
		Name:           req.Name,
		ReferenceText:  req.ReferenceText,
		ReferenceAudio: filepath.Join(referenceSubdir, storedName),
		TTSModelID:     modelID,
		Creator:        req.UserID,
	}

	if err := u.timbreRepo.Create(u.db.WithContext(ctx), timbre); err != nil {
		u.log.Warnf("Failed to create voice timbre: %+v", err)
		os.Remove(storedPath)
		return nil, err
	}

	return converter.VoiceTimbreToResponse(timbre), nil
}

func (u *voiceUsecase) List(ctx context.Context, userID int64) ([]dto.VoiceCloneResponse, error) {
	timbres, err := u.timbreRepo.FindByCreator(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list voice timbres: %+v", err)
		return nil, err
	}

	return converter.VoiceTimbresToResponses(timbres), nil
}

func (u *voiceUsecase) GetByID(ctx context.Context, id string) (*dto.VoiceCloneResponse, error) {
	timbre, err := u.timbreRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find voice timbre: %+v", err)
		return nil, err
	}
	if timbre == nil {
		return nil, ErrVoiceNotFound
	}

	return converter.VoiceTimbreToResponse(timbre), nil
}

// Delete removes the row first; the audio file cleanup is best-effort.
func (u *voiceUsecase) Delete(ctx context.Context, id string) error {
	timbre, err := u.timbreRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find voice timbre: %+v", err)
		return err
	}
	if timbre == nil {
		return ErrVoiceNotFound
	}

	if err := u.timbreRepo.Delete(u.db.WithContext(ctx), timbre.ID); err != nil {
		u.log.Warnf("Failed to delete voice timbre: %+v", err)
		return err
	}

	if timbre.ReferenceAudio != "" {
		if err := os.Remove(filepath.Join(u.uploadPath, timbre.ReferenceAudio)); err != nil && !os.IsNotExist(err) {
			u.log.Warnf("Failed to remove reference audio for timbre %s: %+v", timbre.ID, err)
		}
	}

	return nil
}

// TestSynthesis exercises the TTS path end to end. Synthesis runs in the
// agent subsystem; until that integration lands the endpoint returns a
// canned clip so clients can wire their playback flow.
func (u *voiceUsecase) TestSynthesis(ctx context.Context, req *dto.TestVoiceRequest) (string, error) {
	timbre, err := u.timbreRepo.FindByID(u.db.WithContext(ctx), req.VoiceID)
	if err != nil {
		u.log.Warnf("Failed to find voice timbre: %+v", err)
		return "", err
	}
	if timbre == nil {
		return "", ErrVoiceNotFound
	}

	return "test_audio_url.mp3", nil
}

func shortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
