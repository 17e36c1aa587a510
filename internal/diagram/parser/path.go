package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"
)

// ============================================================
// Path Commands
// ============================================================

// Command — одна команда path data, приведённая к абсолютным координатам.
// Op принимает значения 'M', 'L', 'A', 'Z'.
type Command struct {
	Op       byte
	To       models.Point
	Radius   float64
	LargeArc bool
	Sweep    bool
}

var commandRe = regexp.MustCompile(`([MmLlHhVvAaZz])([^MmLlHhVvAaZz]*)`)

// ============================================================
// Path Parser
// ============================================================

// ParsePath парсит SVG path data в список абсолютных команд.
// Поддерживаются M, L, H, V, A (только круговые дуги) и Z.
func ParsePath(d string) ([]Command, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return nil, fmt.Errorf("empty path")
	}

	var cmds []Command
	var current, start models.Point

	matches := commandRe.FindAllStringSubmatch(d, -1)
	for _, match := range matches {
		if len(match) < 2 {
			continue
		}

		op := match[1]
		coords := parseCoords(match[2])

		switch op {
		case "M", "m": // MoveTo
			if len(coords) < 2 {
				return nil, fmt.Errorf("moveto needs 2 coords, got %d", len(coords))
			}
			current = move(current, coords[0], coords[1], op == "m")
			start = current
			cmds = append(cmds, Command{Op: 'M', To: current})

		case "L", "l": // LineTo
			if len(coords) < 2 {
				return nil, fmt.Errorf("lineto needs 2 coords, got %d", len(coords))
			}
			current = move(current, coords[0], coords[1], op == "l")
			cmds = append(cmds, Command{Op: 'L', To: current})

		case "H", "h": // Horizontal line
			if len(coords) < 1 {
				return nil, fmt.Errorf("horizontal lineto needs 1 coord")
			}
			if op == "h" {
				current.X += coords[0]
			} else {
				current.X = coords[0]
			}
			cmds = append(cmds, Command{Op: 'L', To: current})

		case "V", "v": // Vertical line
			if len(coords) < 1 {
				return nil, fmt.Errorf("vertical lineto needs 1 coord")
			}
			if op == "v" {
				current.Y += coords[0]
			} else {
				current.Y = coords[0]
			}
			cmds = append(cmds, Command{Op: 'L', To: current})

		case "A", "a": // Arc: rx ry rotation large-arc sweep x y
			if len(coords) < 7 {
				return nil, fmt.Errorf("arc needs 7 values, got %d", len(coords))
			}
			if coords[0] != coords[1] {
				return nil, fmt.Errorf("elliptical arcs are not supported")
			}
			current = move(current, coords[5], coords[6], op == "a")
			cmds = append(cmds, Command{
				Op:       'A',
				To:       current,
				Radius:   math.Abs(coords[0]),
				LargeArc: coords[3] != 0,
				Sweep:    coords[4] != 0,
			})

		case "Z", "z": // Close path
			current = start
			cmds = append(cmds, Command{Op: 'Z', To: start})
		}
	}

	if len(cmds) == 0 {
		return nil, fmt.Errorf("no commands in path")
	}
	return cmds, nil
}

// ParsePoints возвращает конечные точки всех команд (без дуговой геометрии).
func ParsePoints(d string) ([]models.Point, error) {
	cmds, err := ParsePath(d)
	if err != nil {
		return nil, err
	}
	points := make([]models.Point, 0, len(cmds))
	for _, c := range cmds {
		points = append(points, c.To)
	}
	return points, nil
}

func move(current models.Point, x, y float64, relative bool) models.Point {
	if relative {
		return models.Point{X: current.X + x, Y: current.Y + y}
	}
	return models.Point{X: x, Y: y}
}

func parseCoords(s string) []float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	// Разделитель: запятая или пробел
	s = strings.ReplaceAll(s, ",", " ")
	parts := strings.Fields(s)

	var coords []float64
	for _, part := range parts {
		val, err := strconv.ParseFloat(part, 64)
		if err == nil {
			coords = append(coords, val)
		}
	}

	return coords
}

// ============================================================
// Arc geometry
// ============================================================

// ArcCenter переводит дугу из конечных точек в центр и углы.
// Возвращает центр, начальный угол и знаковую величину дуги.
// Если радиус меньше половины хорды, он увеличивается до неё, как в SVG.
func (c Command) ArcCenter(from models.Point) (models.Point, float64, float64) {
	x1 := (from.X - c.To.X) / 2
	y1 := (from.Y - c.To.Y) / 2
	half2 := x1*x1 + y1*y1
	if half2 == 0 {
		return from, 0, 0
	}

	r := c.Radius
	if r*r < half2 {
		r = math.Sqrt(half2)
	}

	coef := math.Sqrt(math.Max(0, (r*r-half2)/half2))
	if c.LargeArc == c.Sweep {
		coef = -coef
	}
	cx := coef * y1
	cy := -coef * x1

	center := models.Point{
		X: cx + (from.X+c.To.X)/2,
		Y: cy + (from.Y+c.To.Y)/2,
	}

	theta1 := math.Atan2(y1-cy, x1-cx)
	theta2 := math.Atan2(-y1-cy, -x1-cx)
	delta := theta2 - theta1
	if c.Sweep && delta < 0 {
		delta += 2 * math.Pi
	}
	if !c.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	return center, theta1, delta
}
