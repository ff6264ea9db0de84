package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/pointset"
	"github.com/0x0FACED/go-delaunay/pkg/render"
	"github.com/0x0FACED/go-delaunay/static"
	"go.uber.org/zap"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type params struct {
	width, height int
	points        int
	remove        int
	random        bool
}

// параметры приходят либо из формы (POST), либо из query (/png)
func parseParams(r *http.Request) params {
	p := params{width: 1000, height: 1000, points: 12}
	if err := r.ParseForm(); err != nil || len(r.Form) == 0 {
		return p
	}

	atoi := func(name string, def int) int {
		v, err := strconv.Atoi(r.FormValue(name))
		if err != nil || v < 0 {
			return def
		}
		return v
	}
	p.width = max(atoi("width", p.width), 1)
	p.height = max(atoi("height", p.height), 1)
	p.points = atoi("points", p.points)
	p.remove = atoi("remove", 0)
	p.random = r.FormValue("random") == "true"
	return p
}

// build генерирует точки, строит триангуляцию и удаляет первые p.remove точек.
func build(p params, log *logger.ZapLogger) (*delaunay.Triangulation, error) {
	var points []geom.Point
	if p.random {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		points = pointset.Random(rng, p.points, p.width, p.height)
	} else {
		points = pointset.Grid(p.points, p.width, p.height)
	}
	log.Info("[app] Точки сгенерированы", zap.Int("n", len(points)), zap.Bool("random", p.random))

	tr := delaunay.New(delaunay.WithLogger(log))
	for _, pt := range points {
		if err := tr.AddPoint(pt); err != nil {
			return tr, err
		}
	}
	log.Info("[app] Триангуляция построена",
		zap.Int("points", tr.Len()), zap.Int("triangles", len(tr.Triangles())))

	for i := 0; i < p.remove && i < len(points); i++ {
		if err := tr.RemovePoint(points[i]); err != nil {
			return tr, err
		}
	}
	if p.remove > 0 {
		log.Info("[app] Точки удалены",
			zap.Int("removed", min(p.remove, len(points))), zap.Int("triangles", len(tr.Triangles())))
	}

	return tr, nil
}

func prepareScatter(scatter *charts.Scatter) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Триангуляция Делоне",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Ширина",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Высота",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

func lineSeries(name string, pts ...geom.Point) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)

	data := make([]opts.LineData, 0, len(pts))
	for _, p := range pts {
		data = append(data, opts.LineData{Value: []float64{p.X, p.Y}})
	}
	line.AddSeries(name, data).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{
			Width: 2,
		}),
	)
	return line
}

// Преобразуем триангуляцию в Echarts: точки - scatter, каждый треугольник -
// отдельная замкнутая линия поверх него
func triangulationToEcharts(tr *delaunay.Triangulation) *charts.Scatter {
	scatter := charts.NewScatter()

	points := make([]opts.ScatterData, 0, tr.Len())
	for _, p := range tr.Points() {
		points = append(points, opts.ScatterData{
			Value: []float64{p.X, p.Y},
		})
	}

	prepareScatter(scatter)

	scatter.AddSeries("Точки", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	triangles := tr.Triangles()
	for _, t := range triangles {
		scatter.Overlap(lineSeries("Треугольники", t[0], t[1], t[2], t[0]))
	}
	// все точки на одной прямой: треугольников нет, показываем цепочку
	if len(triangles) == 0 {
		for _, s := range tr.Edges() {
			scatter.Overlap(lineSeries("Ребра", s[0], s[1]))
		}
	}

	return scatter
}

// http обработчик страницы с триангуляцией и формой для ввода данных
func diagramHandler(w http.ResponseWriter, r *http.Request) {
	p := parseParams(r)

	log := logger.New()
	defer log.ClearLogs()

	tr, err := build(p, log)
	if err != nil {
		log.Error("[app] Ошибка построения", zap.Error(err))
	}

	scatter := triangulationToEcharts(tr)

	fmt.Fprintln(w, static.Part1)

	if err := scatter.Render(w); err != nil {
		log.Error("[app] Ошибка рендеринга диаграммы", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)

	// Вставляем логи в HTML
	fmt.Fprintln(w, log.HTML())

	fmt.Fprintln(w, static.Part3)
}

// /png отдает ту же триангуляцию картинкой
func pngHandler(w http.ResponseWriter, r *http.Request) {
	p := parseParams(r)

	tr, err := build(p, logger.NewNop())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := render.WritePNG(w, tr, render.Options{}); err != nil {
		fmt.Println("Ошибка рендеринга PNG:", err)
	}
}

func main() {
	http.HandleFunc("/", diagramHandler)
	http.HandleFunc("/png", pngHandler)
	fmt.Println("Сервер запущен на http://localhost:8080")
	err := http.ListenAndServe(":8080", nil)
	if err != nil {
		fmt.Println("Err ListenAndServe", err)
	}
}
