package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/okian/gelora/internal/domain/model"
)

// exportHeader is the fixed identity prefix of the merged output table;
// the statistic columns follow it in configured order.
var exportHeader = []string{
	"Name", "Player Name", "Team", "Country", "Age", "Position",
	"Picture Url", "Appearances",
}

// WriteMergedCSV writes the merged player table as CSV, one row per roster
// player in merge order. Statistic cells are always populated; integral
// values print without a decimal point.
func WriteMergedCSV(w io.Writer, players []model.MergedPlayer, columns []string) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(exportHeader)+len(columns))
	header = append(header, exportHeader...)
	header = append(header, columns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(header))
	for _, p := range players {
		row = row[:0]
		row = append(row,
			p.Name, p.FullName, p.TeamName, p.Country, p.Age,
			p.Position, p.PictureURL, p.Appearances,
		)
		for _, column := range columns {
			row = append(row, strconv.FormatFloat(p.Stats[column], 'f', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
