package gameControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/PKoev99/VenomGames/services"
)

// GET /admin/games/export
func ExportGamesToExcel(svc *services.GameService) gin.HandlerFunc {
	return func(c *gin.Context) {
		games, err := svc.GetAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Games")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Title", "Price", "Description", "AverageRating", "Categories", "ImageURL"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, g := range games {
			row := sheet.AddRow()
			row.AddCell().SetValue(g.ID)
			row.AddCell().SetValue(g.Title)
			row.AddCell().SetValue(g.Price)
			row.AddCell().SetValue(g.Description)
			row.AddCell().SetValue(strconv.FormatFloat(g.AverageRating, 'f', 2, 64))

			var names []string
			for _, cat := range g.Categories {
				names = append(names, cat.Name)
			}
			row.AddCell().SetValue(strings.Join(names, ","))
			row.AddCell().SetValue(g.ImageURL)
		}

		c.Header("Content-Disposition", "attachment; filename=games.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
