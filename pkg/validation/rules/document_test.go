package rules

import "testing"

func TestIsValidCPF(t *testing.T) {
	valid := []string{
		"52998224725",
		"529.982.247-25", // biçimlendirilmiş hali de kabul edilir
		"11144477735",
	}
	for _, cpf := range valid {
		if !IsValidCPF(cpf) {
			t.Errorf("geçerli CPF reddedildi: %s", cpf)
		}
	}

	invalid := []string{
		"",
		"5299822472",     // 10 basamak
		"529982247255",   // 12 basamak
		"11111111111",    // tüm basamaklar aynı
		"00000000000",    // tüm basamaklar aynı
		"52998224726",    // yanlış ikinci kontrol basamağı
		"52998224735",    // yanlış birinci kontrol basamağı
		"5299822472a",    // rakam dışı karakter
		"529.982.247-26", // biçimlendirilmiş ama kontrol basamağı yanlış
	}
	for _, cpf := range invalid {
		if IsValidCPF(cpf) {
			t.Errorf("geçersiz CPF kabul edildi: %s", cpf)
		}
	}
}

func TestIsValidCNPJ(t *testing.T) {
	valid := []string{
		"11222333000181",
		"11.222.333/0001-81",
	}
	for _, cnpj := range valid {
		if !IsValidCNPJ(cnpj) {
			t.Errorf("geçerli CNPJ reddedildi: %s", cnpj)
		}
	}

	invalid := []string{
		"",
		"1122233300018",   // 13 basamak
		"112223330001811", // 15 basamak
		"11111111111111",  // tüm basamaklar aynı
		"11222333000182",  // yanlış ikinci kontrol basamağı
		"11222333000191",  // yanlış birinci kontrol basamağı
	}
	for _, cnpj := range invalid {
		if IsValidCNPJ(cnpj) {
			t.Errorf("geçersiz CNPJ kabul edildi: %s", cnpj)
		}
	}
}

func TestIsValidTaxID(t *testing.T) {
	// Uzunluğa göre CPF veya CNPJ olarak yorumlanır
	if !IsValidTaxID("52998224725") {
		t.Error("geçerli CPF vergi kimliği olarak reddedildi")
	}
	if !IsValidTaxID("11222333000181") {
		t.Error("geçerli CNPJ vergi kimliği olarak reddedildi")
	}
	if IsValidTaxID("123456789") {
		t.Error("9 basamaklı değer kabul edilmemeli")
	}
	if IsValidTaxID("") {
		t.Error("boş değer kabul edilmemeli")
	}
}

func TestIsValidPhoneNumberBR(t *testing.T) {
	valid := []string{
		"11999998888",
		"+5511999998888",
		"11 99999-8888",
		"(11) 99999-8888",
		"2133334444", // sabit hat (8 basamak, 9 öneki yok)
	}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone, "BR") {
			t.Errorf("geçerli BR numarası reddedildi: %s", phone)
		}
	}

	invalid := []string{
		"",
		"999998888",       // DDD eksik
		"0199999988881234", // çok uzun
		"abc99998888",
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone, "BR") {
			t.Errorf("geçersiz BR numarası kabul edildi: %s", phone)
		}
	}

	if IsValidPhoneNumber("11999998888", "XX") {
		t.Error("bilinmeyen ülke kodu kabul edilmemeli")
	}
}

func TestIsValidIP(t *testing.T) {
	if !IsValidIP("192.168.1.1", 4) {
		t.Error("geçerli IPv4 reddedildi")
	}
	if !IsValidIP("::1", 6) {
		t.Error("geçerli IPv6 reddedildi")
	}
	if IsValidIP("192.168.1.1", 6) {
		t.Error("IPv4 adresi IPv6 olarak kabul edilmemeli")
	}
	if !IsValidIP("192.168.1.1", 0) {
		t.Error("versiyon 0 her iki formatı da kabul etmeli")
	}
	if IsValidIP("not-an-ip", 0) {
		t.Error("geçersiz IP kabul edilmemeli")
	}
}
