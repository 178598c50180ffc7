package attachment

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"mime/multipart"
	"path"
	"strings"

	db "sentinela/db/sqlc"
	bucket "sentinela/pkg/s3"
)

var (
	ErrOcorrenciaNaoEncontrada = errors.New("ocorrência não encontrada")
	ErrAnexoNaoEncontrado      = errors.New("anexo não encontrado")
	ErrExtensaoInvalida        = errors.New("extensão de arquivo não permitida")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

type ServiceInterface interface {
	CreateAnexoService(ctx context.Context, ocorrenciaID int64, data *multipart.Form) ([]AnexoResponse, error)
	GetAnexosByOcorrenciaService(ctx context.Context, ocorrenciaID int64) ([]AnexoResponse, error)
	DeleteAnexoService(ctx context.Context, id int64) error
}

type Service struct {
	repo       InterfaceRepository
	bucketName string
}

func NewAttachmentService(repo InterfaceRepository, bucketName string) *Service {
	return &Service{
		repo:       repo,
		bucketName: bucketName,
	}
}

// CreateAnexoService sobe cada arquivo do formulário para o S3 e registra a
// URL resultante vinculada à ocorrência.
func (s *Service) CreateAnexoService(ctx context.Context, ocorrenciaID int64, data *multipart.Form) ([]AnexoResponse, error) {
	_, err := s.repo.GetOcorrenciaById(ctx, ocorrenciaID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOcorrenciaNaoEncontrada
	}
	if err != nil {
		return nil, err
	}

	var anexos []AnexoResponse
	for _, files := range data.File {
		for _, fileHeader := range files {
			originalFilename := fileHeader.Filename
			fileExtension := strings.ToLower(path.Ext(originalFilename))
			if !allowedExtensions[fileExtension] {
				return nil, ErrExtensaoInvalida
			}
			newNameFileUp := GetUUID() + fileExtension

			f, err := fileHeader.Open()
			if err != nil {
				return nil, err
			}
			fileBytes, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return nil, err
			}

			contentType := fileHeader.Header.Get("Content-Type")

			strUrl, err := bucket.UploadFileToS3(fileBytes, newNameFileUp, s.bucketName, contentType)
			if err != nil {
				return nil, err
			}

			anexo, err := s.repo.CreateAnexo(ctx, db.CreateAnexoParams{
				OcorrenciaID: ocorrenciaID,
				Nome:         originalFilename,
				Url:          strUrl,
				ContentType: sql.NullString{
					String: contentType,
					Valid:  contentType != "",
				},
			})
			if err != nil {
				return nil, err
			}

			response := AnexoResponse{}
			response.ParseFromAnexoObject(anexo)
			anexos = append(anexos, response)
		}
	}

	return anexos, nil
}

func (s *Service) GetAnexosByOcorrenciaService(ctx context.Context, ocorrenciaID int64) ([]AnexoResponse, error) {
	result, err := s.repo.GetAnexosByOcorrencia(ctx, ocorrenciaID)
	if err != nil {
		return nil, err
	}

	anexos := make([]AnexoResponse, 0, len(result))
	for _, item := range result {
		response := AnexoResponse{}
		response.ParseFromAnexoObject(item)
		anexos = append(anexos, response)
	}

	return anexos, nil
}

// DeleteAnexoService remove o objeto do S3 antes de apagar o registro.
func (s *Service) DeleteAnexoService(ctx context.Context, id int64) error {
	anexo, err := s.repo.GetAnexoById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAnexoNaoEncontrado
	}
	if err != nil {
		return err
	}

	key := path.Base(anexo.Url)
	if err := bucket.DeleteFile(ctx, s.bucketName, key); err != nil {
		return err
	}

	return s.repo.DeleteAnexo(ctx, id)
}
