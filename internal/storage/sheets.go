package storage

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// ValuesAPI описывает минимальный доступ к ячейкам таблицы, который нужен репозиториям.
// Интерфейс выделен, чтобы в тестах подменять Google Sheets in-memory фейком.
type ValuesAPI interface {
	// Get возвращает строки диапазона; хвостовые пустые ячейки строк обрезаны, как в Sheets API
	Get(ctx context.Context, readRange string) ([][]interface{}, error)
	// Append дописывает одну строку в конец диапазона
	Append(ctx context.Context, writeRange string, row []interface{}) error
	// Update перезаписывает ячейки диапазона одной строкой
	Update(ctx context.Context, writeRange string, row []interface{}) error
}

// sheetValues — реализация ValuesAPI поверх Google Sheets v4
type sheetValues struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetValues создаёт адаптер над values-частью Sheets API для одной таблицы
func NewSheetValues(svc *sheets.Service, spreadsheetID string) ValuesAPI {
	return &sheetValues{svc: svc, spreadsheetID: spreadsheetID}
}

func (s *sheetValues) Get(ctx context.Context, readRange string) ([][]interface{}, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}
	return resp.Values, nil
}

func (s *sheetValues) Append(ctx context.Context, writeRange string, row []interface{}) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, writeRange, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append to range %s: %w", writeRange, err)
	}
	return nil
}

func (s *sheetValues) Update(ctx context.Context, writeRange string, row []interface{}) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, writeRange, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update range %s: %w", writeRange, err)
	}
	return nil
}
