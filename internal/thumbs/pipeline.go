package thumbs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/mlihgenel/medianexus-cli/internal/transcoder"
)

// Result tek bir önizleme işinin sonucudur. Err dolu olsa bile boru
// hattı durmaz; önizlemesi çıkarılamayan dosya (ör. ses) önizlemesiz
// listelenir.
type Result struct {
	Source string
	Thumb  string
	Err    error
}

type job struct {
	source string
	thumb  string
}

// Pipeline sınırlı sayıda worker ile önizleme üreten uzun ömürlü boru
// hattıdır. Aynı çıktı için uçuştaki istekler tekilleştirilir: ikinci
// istek kuyruğa girmez, ilk işin sonucu her iki isteği de karşılar.
type Pipeline struct {
	ff  *transcoder.FFmpeg
	dir string

	jobs    chan job
	results chan Result

	mu       sync.Mutex
	inflight map[string]struct{}
	closed   bool

	wg sync.WaitGroup
}

// ThumbName kaynağın önizleme dosya adını üretir: "{ad}.jpg".
func ThumbName(src string) string {
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".jpg"
}

// New yeni bir boru hattı başlatır. workers <= 0 ise CPU sayısı kullanılır.
// Sonuç kanalı Close çağrılana kadar çağıran tarafından tüketilmelidir.
func New(ff *transcoder.FFmpeg, dir string, workers int) *Pipeline {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	maxWorkers := runtime.NumCPU() * 2
	if workers > maxWorkers {
		workers = maxWorkers
	}

	p := &Pipeline{
		ff:       ff,
		dir:      dir,
		jobs:     make(chan job, 128),
		results:  make(chan Result, 128),
		inflight: make(map[string]struct{}),
	}

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

// Dir önizleme klasörünü döner.
func (p *Pipeline) Dir() string { return p.dir }

// ThumbPath kaynağın önizleme dosyasının tam yolunu döner.
func (p *Pipeline) ThumbPath(src string) string {
	return filepath.Join(p.dir, ThumbName(src))
}

// Request kaynağın önizlemesini kuyruğa ekler. Önizleme diskte zaten
// varsa, aynı çıktı uçuştaysa veya boru hattı kapatıldıysa false döner.
func (p *Pipeline) Request(src string) bool {
	thumb := p.ThumbPath(src)
	if _, err := os.Stat(thumb); err == nil {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false
	}
	if _, busy := p.inflight[thumb]; busy {
		return false
	}

	select {
	case p.jobs <- job{source: src, thumb: thumb}:
		p.inflight[thumb] = struct{}{}
		return true
	default:
		// Kuyruk dolu; istek düşer, sonraki tarama yeniden dener.
		return false
	}
}

// Results tamamlanan işlerin kanalını döner; Close sonrası kapanır.
func (p *Pipeline) Results() <-chan Result {
	return p.results
}

// InFlight kuyruktaki ve işlenmekte olan iş sayısını döner.
func (p *Pipeline) InFlight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.inflight)
}

// Close yeni istekleri durdurur, kuyruktaki işlerin bitmesini bekler ve
// sonuç kanalını kapatır.
func (p *Pipeline) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

func (p *Pipeline) worker() {
	defer p.wg.Done()
	for j := range p.jobs {
		err := p.ff.ExtractThumbnail(j.source, j.thumb)

		p.mu.Lock()
		delete(p.inflight, j.thumb)
		p.mu.Unlock()

		p.results <- Result{Source: j.source, Thumb: j.thumb, Err: err}
	}
}
