package timeline

// DragState aktif sürükleme hedefini belirtir.
type DragState int

const (
	DragIdle DragState = iota
	DragStart
	DragEnd
	DragPlayhead
)

// fineTuneFactor ince ayar modunda ham deltanın uygulanan oranı.
// Dar piksel aralıklarında (uzun medya, dar pencere) piksel-altı
// hassasiyet sağlar.
const fineTuneFactor = 0.25

// Timeline kırpma zaman çizelgesinin durum makinesidir: [Min,Max] aralığı,
// başlangıç/bitiş işaretleri, oynatma kafası ve piksel eşlemesi.
//
// Tek bir kontrol goroutine'ine aittir; eşzamanlı erişim senkronize edilmez.
// Tüm girdiler sabitlenir veya sessizce reddedilir — bu bir doğrulama API'si
// değil, arayüz tepkiselliği bileşenidir.
type Timeline struct {
	Min int64
	Max int64

	Playhead int64
	Start    int64
	End      int64

	// Piksel eşlemesi için ev sahibi tarafından sağlanan ölçüler.
	TrackWidth    int
	HandleWidth   int
	SnapThreshold int

	drag DragState

	// Değişiklik bildirimleri; nil bırakılabilir.
	OnPlayhead func(int64)
	OnStart    func(int64)
	OnEnd      func(int64)
}

// New varsayılan ölçülerle yeni bir zaman çizelgesi oluşturur.
func New(trackWidth int) *Timeline {
	return &Timeline{
		Max:           100,
		End:           100,
		TrackWidth:    trackWidth,
		HandleWidth:   16,
		SnapThreshold: 10,
	}
}

// Drag aktif sürükleme durumunu döner.
func (t *Timeline) Drag() DragState { return t.drag }

// SetRange [min,max] aralığını günceller. max < min ise aralık
// dejenere (max=min) olarak ayarlanır.
func (t *Timeline) SetRange(min, max int64) {
	if max < min {
		max = min
	}
	t.Min = min
	t.Max = max
}

// Reset yeni bir medya yüklendiğinde veya süre asenkron olarak
// öğrenildiğinde çağrılır: start=min, end=max, playhead=0.
func (t *Timeline) Reset(min, max int64) {
	t.SetRange(min, max)
	t.Start = t.Min
	t.End = t.Max
	t.Playhead = clamp(0, t.Min, t.Max)
	t.drag = DragIdle
}

// ValueToPixel değeri [Min,Max] aralığına sabitleyip
// [HandleWidth/2, TrackWidth-HandleWidth/2] piksel bandına doğrusal eşler.
// Dejenere aralıkta (Max==Min) bandın orta noktasını döner.
func (t *Timeline) ValueToPixel(v int64) int {
	if t.Max == t.Min {
		return t.TrackWidth / 2
	}
	v = clamp(v, t.Min, t.Max)
	track := t.TrackWidth - t.HandleWidth
	return int(float64(v-t.Min)/float64(t.Max-t.Min)*float64(track)) + t.HandleWidth/2
}

// PixelToValue ters doğrusal eşlemedir; sonuç [Min,Max] aralığına sabitlenir.
// Kullanılabilir bant yoksa (TrackWidth <= HandleWidth) Min döner.
func (t *Timeline) PixelToValue(px int) int64 {
	track := t.TrackWidth - t.HandleWidth
	if track <= 0 {
		return t.Min
	}
	v := float64(t.Min) + float64(px-t.HandleWidth/2)/float64(track)*float64(t.Max-t.Min)
	return clamp(int64(v), t.Min, t.Max)
}

// BeginDrag px konumuna HandleWidth/2'den yakın olan tutamaçlardan en
// yakınını seçer; hiçbiri eşleşmezse oynatma kafası sürüklenir.
func (t *Timeline) BeginDrag(px int) {
	startDist := abs(px - t.ValueToPixel(t.Start))
	endDist := abs(px - t.ValueToPixel(t.End))
	headDist := abs(px - t.ValueToPixel(t.Playhead))

	t.drag = DragPlayhead
	best := t.HandleWidth / 2
	if startDist < best {
		t.drag = DragStart
		best = startDist
	}
	if endDist < best {
		t.drag = DragEnd
		best = endDist
	}
	if headDist < best {
		t.drag = DragPlayhead
	}
}

// UpdateDrag sürükleme sırasında px konumunu değere çevirip aktif hedefe
// uygular. İşaret güncellemeleri start < end koşulunu bozacaksa uygulanmaz
// (değer sabitlenmez, yok sayılır). fineTune modunda ham deltanın yalnızca
// bir kesri uygulanır.
func (t *Timeline) UpdateDrag(px int, fineTune bool) {
	if t.drag == DragIdle {
		return
	}

	factor := 1.0
	if fineTune {
		factor = fineTuneFactor
	}
	value := t.PixelToValue(px)

	switch t.drag {
	case DragPlayhead:
		t.Playhead = value
		t.notifyPlayhead(value)
	case DragStart:
		next := t.Start + int64(float64(value-t.Start)*factor)
		if next < t.End {
			t.Start = next
			if t.OnStart != nil {
				t.OnStart(next)
			}
		}
	case DragEnd:
		next := t.End + int64(float64(value-t.End)*factor)
		if next > t.Start {
			t.End = next
			if t.OnEnd != nil {
				t.OnEnd(next)
			}
		}
	}
}

// EndDrag sürüklemeyi bitirir. Oynatma kafası bir işaretin SnapThreshold
// piksel yakınına bırakıldıysa o işaretin tam değerine yapışır.
// Durum her koşulda Idle'a döner.
func (t *Timeline) EndDrag() {
	if t.drag == DragPlayhead {
		headPx := t.ValueToPixel(t.Playhead)
		if abs(headPx-t.ValueToPixel(t.Start)) < t.SnapThreshold {
			t.Playhead = t.Start
			t.notifyPlayhead(t.Start)
		} else if abs(headPx-t.ValueToPixel(t.End)) < t.SnapThreshold {
			t.Playhead = t.End
			t.notifyPlayhead(t.End)
		}
	}
	t.drag = DragIdle
}

// SetPlayhead oynatma kafasını [Min,Max] aralığına sabitleyerek günceller.
func (t *Timeline) SetPlayhead(v int64) {
	v = clamp(v, t.Min, t.Max)
	t.Playhead = v
	t.notifyPlayhead(v)
}

// SetStart başlangıç işaretini günceller; start < end bozulacaksa
// değer yok sayılır ve false döner.
func (t *Timeline) SetStart(v int64) bool {
	v = clamp(v, t.Min, t.Max)
	if v >= t.End {
		return false
	}
	t.Start = v
	if t.OnStart != nil {
		t.OnStart(v)
	}
	return true
}

// SetEnd bitiş işaretini günceller; start < end bozulacaksa
// değer yok sayılır ve false döner.
func (t *Timeline) SetEnd(v int64) bool {
	v = clamp(v, t.Min, t.Max)
	if v <= t.Start {
		return false
	}
	t.End = v
	if t.OnEnd != nil {
		t.OnEnd(v)
	}
	return true
}

func (t *Timeline) notifyPlayhead(v int64) {
	if t.OnPlayhead != nil {
		t.OnPlayhead(v)
	}
}

func clamp(v, min, max int64) int64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
