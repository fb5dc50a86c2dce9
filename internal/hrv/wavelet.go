package hrv

import "math"

// Коэффициенты масштабирующего фильтра Добеши db5 (фильтр разложения).
// Высокочастотный фильтр получается из него квадратурным отражением.
var db5DecLow = []float64{
	0.0033357252854737743,
	-0.0125807519990820100,
	-0.0062414902127983195,
	0.0775714938400456400,
	-0.0322448695846385400,
	-0.2422948870663826000,
	0.1384281459013202000,
	0.7243085284377728000,
	0.6038292697971898000,
	0.1601023979741929600,
}

// db5Filters возвращает низкочастотный и высокочастотный фильтры
// разложения для вейвлета db5
func db5Filters() (low, high []float64) {
	low = db5DecLow
	high = make([]float64, len(low))
	n := len(low)
	for k := 0; k < n; k++ {
		// g[k] = (-1)^(k+1) * h[n-1-k]
		if k%2 == 0 {
			high[k] = -low[n-1-k]
		} else {
			high[k] = low[n-1-k]
		}
	}
	return low, high
}

// extendSmooth возвращает значение сигнала по индексу i, продлевая
// сигнал за границы линейной экстраполяцией по краевому наклону
// (граничный режим "smooth")
func extendSmooth(signal []float64, i int) float64 {
	n := len(signal)
	if n == 1 {
		return signal[0]
	}
	if i < 0 {
		return signal[0] + float64(i)*(signal[1]-signal[0])
	}
	if i >= n {
		return signal[n-1] + float64(i-(n-1))*(signal[n-1]-signal[n-2])
	}
	return signal[i]
}

// downsampleConvolve выполняет свертку сигнала с фильтром с прореживанием 2:1.
// Длина результата floor((n+F-1)/2), где F - длина фильтра.
func downsampleConvolve(signal, filter []float64) []float64 {
	n := len(signal)
	f := len(filter)
	out := make([]float64, (n+f-1)/2)
	for i := range out {
		sum := 0.0
		for j := 0; j < f; j++ {
			sum += filter[j] * extendSmooth(signal, 2*i+1-j)
		}
		out[i] = sum
	}
	return out
}

// DWT выполняет одноуровневое дискретное вейвлет-преобразование db5
// со сглаживающим граничным режимом. Возвращает аппроксимирующие
// и детализирующие коэффициенты (каждый массив примерно вдвое короче входа).
func DWT(values []float64) (approx, detail []float64) {
	low, high := db5Filters()
	return downsampleConvolve(values, low), downsampleConvolve(values, high)
}

// DetectAnomalies находит аномальные измерения по детализирующим
// коэффициентам вейвлет-разложения. Порог выводится из оценки шума:
// threshold = sqrt(mean(detail^2) * ln(N)). Индекс каждого превысившего
// порог коэффициента отображается обратно в индекс входной серии
// удвоением (прореживание преобразования 2:1), поэтому у правого края
// индексы могут выходить за длину серии - их отбрасывает вызывающая
// сторона. Возвращает детализирующие коэффициенты (для диагностики)
// и индексы аномалий.
func DetectAnomalies(values []float64) (detail []float64, indices []int) {
	_, detail = DWT(values)

	noise := 0.0
	for _, d := range detail {
		noise += d * d
	}
	noise /= float64(len(detail))
	threshold := math.Sqrt(noise * math.Log(float64(len(values))))

	for j, d := range detail {
		if math.Abs(d) > threshold {
			indices = append(indices, 2*j)
		}
	}
	return detail, indices
}
