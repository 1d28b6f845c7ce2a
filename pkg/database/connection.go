// -----------------------------------------------------------------------------
// Database Package
// -----------------------------------------------------------------------------
// Bu dosya, uygulamanın PostgreSQL veritabanına bağlanmasını sağlayan merkezi
// bağlantı fonksiyonunu içerir. Laravel veya Symfony frameworklerinde olduğu
// gibi, veritabanı bağlantısı yapılandırmasını merkezi bir noktadan yönetir.
//
// Buradaki Connect fonksiyonu, DSN (Data Source Name) parametresi alır,
// bağlantıyı başlatır ve bağlantı havuzlaması ile performans optimizasyonu
// sağlar. Bağlantı başarılı olduğunda db nesnesi geri döndürülür, hata
// durumunda uygun error handling yapılır.
// -----------------------------------------------------------------------------

package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// Options, bağlantı havuzu ayarlarını taşır. Sıfır değerler makul
// varsayılanlarla doldurulur.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Connect, verilen DSN ile PostgreSQL veritabanına bağlanır ve *sql.DB nesnesini döndürür.
// Bağlantı sırasında şu adımlar gerçekleştirilir:
//  1. sql.Open ile sürücü ve DSN kullanılarak bağlantı nesnesi oluşturulur.
//  2. Bağlantı havuzu için max open ve idle connection değerleri belirlenir.
//  3. Bağlantı ömrü (ConnMaxLifetime) ayarlanır.
//  4. db.Ping ile veritabanının ulaşılabilirliği kontrol edilir.
//  5. Başarılı olursa db nesnesi döndürülür, hata varsa connection kapatılır ve error döner.
func Connect(dsn string, opts Options) (*sql.DB, error) {

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err // Bağlantı açma hatası
	}

	if opts.MaxOpenConns <= 0 {
		opts.MaxOpenConns = 25
	}
	if opts.MaxIdleConns <= 0 {
		opts.MaxIdleConns = 25
	}
	if opts.ConnMaxLifetime <= 0 {
		opts.ConnMaxLifetime = 5 * time.Minute
	}

	// Bağlantı havuzu ayarları: performans ve kaynak yönetimi için
	db.SetMaxOpenConns(opts.MaxOpenConns)       // Maksimum açık bağlantı sayısı
	db.SetMaxIdleConns(opts.MaxIdleConns)       // Maksimum idle bağlantı sayısı
	db.SetConnMaxLifetime(opts.ConnMaxLifetime) // Bağlantı ömrü

	log.Println("Veritabanına bağlanılıyor...")
	err = db.Ping() // Gerçek bağlantıyı test et
	if err != nil {
		db.Close() // Hata durumunda bağlantıyı kapat
		return nil, err
	}

	log.Println("✅ Veritabanı bağlantısı başarılı!")
	return db, nil
}
