// Package stats grava amostras de custo por frame em SQLite para comparar
// o modo de baixa resolução com o de alta resolução.
package stats

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultBatchSize é quantas amostras acumulam antes de irem ao banco.
const DefaultBatchSize = 120

// FrameSample é uma amostra de um frame.
type FrameSample struct {
	ID        uint    `gorm:"primaryKey"`
	Session   string  `gorm:"index"`
	Mode      string  `gorm:"index"`
	FrameMS   float32 `gorm:"column:frame_ms"`
	Visible   int
	Rendered  int
	Total     int
	CreatedAt time.Time
}

// ModeSummary agrega as amostras de um modo.
type ModeSummary struct {
	Mode       string  `gorm:"column:mode"`
	Frames     int64   `gorm:"column:frames"`
	AvgFrameMS float64 `gorm:"column:avg_frame_ms"`
	MaxFrameMS float64 `gorm:"column:max_frame_ms"`
	AvgVisible float64 `gorm:"column:avg_visible"`
}

// Recorder acumula amostras em memória e grava em lote.
type Recorder struct {
	db        *gorm.DB
	session   string
	batchSize int
	pending   []FrameSample
}

// Open abre (ou cria) o banco em path. ":memory:" usa um banco em memória.
func Open(path string) (*Recorder, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("falha ao criar pasta de estatísticas: %w", err)
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}
	if path == ":memory:" {
		// Cada conexão em memória é um banco novo
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}
	if err := db.AutoMigrate(&FrameSample{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	r := &Recorder{
		db:        db,
		session:   time.Now().Format("20060102-150405"),
		batchSize: DefaultBatchSize,
		pending:   make([]FrameSample, 0, DefaultBatchSize),
	}
	log.Printf("[Stats] Banco de estatísticas aberto: %s (sessão %s)", path, r.session)
	return r, nil
}

// Session retorna o identificador da sessão corrente.
func (r *Recorder) Session() string { return r.session }

// Record adiciona uma amostra; grava o lote quando ele enche.
func (r *Recorder) Record(mode string, frame time.Duration, visible, rendered, total int) error {
	r.pending = append(r.pending, FrameSample{
		Session:  r.session,
		Mode:     mode,
		FrameMS:  float32(frame.Seconds() * 1000),
		Visible:  visible,
		Rendered: rendered,
		Total:    total,
	})
	if len(r.pending) >= r.batchSize {
		return r.Flush()
	}
	return nil
}

// Flush grava as amostras pendentes.
func (r *Recorder) Flush() error {
	if len(r.pending) == 0 {
		return nil
	}
	if err := r.db.CreateInBatches(r.pending, r.batchSize).Error; err != nil {
		return fmt.Errorf("falha ao gravar %d amostras: %w", len(r.pending), err)
	}
	r.pending = r.pending[:0]
	return nil
}

// Summary agrega as amostras gravadas da sessão corrente por modo.
func (r *Recorder) Summary() ([]ModeSummary, error) {
	if err := r.Flush(); err != nil {
		return nil, err
	}
	var out []ModeSummary
	err := r.db.Model(&FrameSample{}).
		Select("mode, COUNT(*) AS frames, AVG(frame_ms) AS avg_frame_ms, MAX(frame_ms) AS max_frame_ms, AVG(visible) AS avg_visible").
		Where("session = ?", r.session).
		Group("mode").
		Order("mode").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("falha ao agregar estatísticas: %w", err)
	}
	return out, nil
}

// Close grava o que falta, registra o resumo e fecha o banco.
func (r *Recorder) Close() error {
	if sum, err := r.Summary(); err != nil {
		log.Printf("[Stats] %v", err)
	} else {
		for _, s := range sum {
			log.Printf("[Stats] %s: %d frames, média %.2f ms, pico %.2f ms, %.1f props visíveis",
				s.Mode, s.Frames, s.AvgFrameMS, s.MaxFrameMS, s.AvgVisible)
		}
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
